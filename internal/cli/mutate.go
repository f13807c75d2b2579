package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/bankapp/investment-club/internal/app"
	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	env    *Env
	userID string
	amount float64
	rate   float64
	start  string
	end    string
	status string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "record a new investment for a client" }
func (*investCmd) Usage() string {
	return `clubctl invest -user <id> -amount <n> -rate <pct> -start <date> -end <date> [-status <status>]

  Records an investment. Dates use the YYYY-MM-DD format and the status is
  one of pending, active or completed.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "Owner of the investment.")
	f.Float64Var(&c.amount, "amount", 0, "Principal amount.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate, in percent.")
	f.StringVar(&c.start, "start", time.Now().Format(dateLayout), "Start date.")
	f.StringVar(&c.end, "end", "", "Maturity date.")
	f.StringVar(&c.status, "status", string(domain.StatusPending), "Initial status.")
}

func (c *investCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.userID == "" || c.end == "" {
		fmt.Fprintln(os.Stderr, "Error: -user and -end are required")
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

	var b strings.Builder
	err = c.env.withApp(ctx, func(a *app.App) error {
		inv, err := a.Investments.Create(ctx, ports.CreateInvestmentInput{
			UserID:       c.userID,
			Amount:       c.amount,
			InterestRate: c.rate,
			StartDate:    start,
			EndDate:      end,
			Status:       domain.InvestmentStatus(c.status),
		})
		if err != nil {
			return err
		}
		return renderStored(ctx, &b, a, "Investment recorded", *inv)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording investment: %v\n", err)
		return exitFor(err)
	}
	c.env.printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// updateCmd holds the flags for the 'update' subcommand. Only the flags given
// on the command line are applied.
type updateCmd struct {
	env    *Env
	id     string
	userID string
	amount float64
	rate   float64
	start  string
	end    string
	status string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change fields of an investment" }
func (*updateCmd) Usage() string {
	return `clubctl update -id <id> [-user <id>] [-amount <n>] [-rate <pct>] [-start <date>] [-end <date>] [-status <status>]

  Updates the given fields of an investment and leaves the others as they are.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Investment to update.")
	f.StringVar(&c.userID, "user", "", "New owner.")
	f.Float64Var(&c.amount, "amount", 0, "New principal amount.")
	f.Float64Var(&c.rate, "rate", 0, "New annual interest rate, in percent.")
	f.StringVar(&c.start, "start", "", "New start date.")
	f.StringVar(&c.end, "end", "", "New maturity date.")
	f.StringVar(&c.status, "status", "", "New status.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	patch, err := c.patch(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var b strings.Builder
	err = c.env.withApp(ctx, func(a *app.App) error {
		inv, err := a.Investments.Update(ctx, c.id, patch)
		if err != nil {
			return err
		}
		return renderStored(ctx, &b, a, "Investment updated", *inv)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating investment %q: %v\n", c.id, err)
		return exitFor(err)
	}
	c.env.printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func (c *updateCmd) patch(f *flag.FlagSet) (domain.InvestmentPatch, error) {
	var (
		patch domain.InvestmentPatch
		err   error
	)
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "user":
			patch.UserID = &c.userID
		case "amount":
			patch.Amount = &c.amount
		case "rate":
			patch.InterestRate = &c.rate
		case "start":
			var t time.Time
			if t, err = parseDate(c.start); err == nil {
				patch.StartDate = &t
			}
		case "end":
			var t time.Time
			if t, err = parseDate(c.end); err == nil {
				patch.EndDate = &t
			}
		case "status":
			s := domain.InvestmentStatus(c.status)
			patch.Status = &s
		}
	})
	return patch, err
}

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	env *Env
	id  string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an investment" }
func (*deleteCmd) Usage() string {
	return `clubctl delete -id <id>

  Removes an investment. Exits with a failure status when no investment has
  that id.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Investment to remove.")
}

func (c *deleteCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	var removed bool
	err := c.env.withApp(ctx, func(a *app.App) error {
		var err error
		removed, err = a.Investments.Delete(ctx, c.id)
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting investment %q: %v\n", c.id, err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Fprintf(os.Stderr, "Error: %v: %s\n", domain.ErrInvestmentNotFound, c.id)
		return subcommands.ExitFailure
	}
	c.env.printMarkdown(fmt.Sprintf("Investment `%s` deleted.\n", c.id))
	return subcommands.ExitSuccess
}

// exitFor reports rejected input as a usage error and anything else as a failure.
func exitFor(err error) subcommands.ExitStatus {
	if errors.Is(err, domain.ErrInvalidInvestment) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
