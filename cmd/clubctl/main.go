// Command clubctl administers the investment club from the terminal, against
// the same storage backend the API server is configured with.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/bankapp/investment-club/internal/app"
	"github.com/bankapp/investment-club/internal/cli"
	"github.com/bankapp/investment-club/internal/infrastructure/config"
	"github.com/bankapp/investment-club/pkg/logger"
)

func main() {
	env := &cli.Env{Open: open}
	flag.BoolVar(&env.Plain, "plain", false, "Print raw markdown instead of rendering it.")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cli.Commands(env) {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func open(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Output:  os.Stderr,
		Service: "clubctl",
	})
	return cli.OpenDurable(ctx, cfg, log)
}
