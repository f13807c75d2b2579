// Package cli implements the clubctl administration commands. Every command
// works against the same storage backend as the HTTP server and prints its
// result as markdown.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/bankapp/investment-club/internal/app"
)

const dateLayout = "2006-01-02"

// Env is what the commands share: how to reach the club's services and
// where to print.
type Env struct {
	// Open builds the application. Commands close it when they are done.
	Open func(ctx context.Context) (*app.App, error)
	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer
	// Plain prints raw markdown instead of rendering it for a terminal.
	Plain bool
}

// Commands returns every clubctl subcommand bound to env.
func Commands(env *Env) []subcommands.Command {
	return []subcommands.Command{
		&clientsCmd{env: env},
		&investmentsCmd{env: env},
		&summaryCmd{env: env},
		&investCmd{env: env},
		&updateCmd{env: env},
		&deleteCmd{env: env},
		&projectCmd{env: env},
	}
}

func (e *Env) out() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

// withApp opens the application, runs fn and closes it again.
func (e *Env) withApp(ctx context.Context, fn func(*app.App) error) error {
	a, err := e.Open(ctx)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer a.Close(ctx)
	return fn(a)
}

func (e *Env) printMarkdown(md string) {
	if e.Plain {
		fmt.Fprint(e.out(), md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(e.out(), md)
		return
	}
	rendered, err := r.Render(md)
	if err != nil {
		fmt.Fprint(e.out(), md)
		return
	}
	fmt.Fprint(e.out(), rendered)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
