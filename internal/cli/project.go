package cli

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/bankapp/investment-club/internal/core/domain"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	env    *Env
	amount float64
	rate   float64
	start  string
	end    string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "compute the projected value of an investment" }
func (*projectCmd) Usage() string {
	return `clubctl project -amount <n> -rate <pct> [-start <date>] -end <date>

  Compounds the amount annually at the given rate over the whole days
  between start and end. Nothing is stored.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Principal amount.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate, in percent.")
	f.StringVar(&c.start, "start", time.Now().Format(dateLayout), "Start date.")
	f.StringVar(&c.end, "end", "", "Maturity date.")
}

func (c *projectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !finite(c.amount) || !finite(c.rate) {
		fmt.Fprintln(os.Stderr, "Error: -amount and -rate must be finite numbers")
		return subcommands.ExitUsageError
	}
	start, err := parseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := parseDate(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	projected := domain.ProjectedReturn(c.amount, c.rate, start, end)

	var b strings.Builder
	b.WriteString("# Projection\n\n")
	b.WriteString("| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Principal | %s |\n", domain.FormatAmount(decimalOf(c.amount)))
	fmt.Fprintf(&b, "| Rate | %s%% |\n", decimalOf(c.rate).String())
	fmt.Fprintf(&b, "| Days | %d |\n", domain.DurationDays(start, end))
	fmt.Fprintf(&b, "| Projected | %s |\n", domain.FormatAmount(projected))
	fmt.Fprintf(&b, "| Gain | %s |\n", domain.FormatAmount(projected.Sub(decimalOf(c.amount))))
	c.env.printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
