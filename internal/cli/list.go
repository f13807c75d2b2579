package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/bankapp/investment-club/internal/app"
	"github.com/bankapp/investment-club/internal/core/domain"
)

type clientsCmd struct {
	env *Env
}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list registered clients" }
func (*clientsCmd) Usage() string {
	return `clubctl clients

  Lists every registered client. The administrator is not included.
`
}

func (*clientsCmd) SetFlags(*flag.FlagSet) {}

func (c *clientsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	err := c.env.withApp(ctx, func(a *app.App) error {
		users, err := a.Auth.ListClients(ctx)
		if err != nil {
			return err
		}
		renderClients(&b, users)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing clients: %v\n", err)
		return subcommands.ExitFailure
	}
	c.env.printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// investmentsCmd holds the flags for the 'investments' subcommand.
type investmentsCmd struct {
	env    *Env
	userID string
}

func (*investmentsCmd) Name() string     { return "investments" }
func (*investmentsCmd) Synopsis() string { return "list investments with their projections" }
func (*investmentsCmd) Usage() string {
	return `clubctl investments [-user <id>]

  Lists investments in insertion order, with duration, progress and
  projected value at maturity.
`
}

func (c *investmentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "Only list the investments owned by this user id.")
}

func (c *investmentsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	err := c.env.withApp(ctx, func(a *app.App) error {
		var (
			invs []domain.Investment
			err  error
		)
		if c.userID != "" {
			invs, err = a.Investments.ListForUser(ctx, c.userID)
		} else {
			invs, err = a.Investments.List(ctx)
		}
		if err != nil {
			return err
		}
		views, err := a.Summary.Views(ctx, invs)
		if err != nil {
			return err
		}
		renderInvestments(&b, "Investments", views)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing investments: %v\n", err)
		return subcommands.ExitFailure
	}
	c.env.printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	env    *Env
	userID string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the club or a client summary" }
func (*summaryCmd) Usage() string {
	return `clubctl summary [-user <id>]

  Without -user, displays the administrator dashboard figures. With -user,
  displays that client's totals and investments.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.userID, "user", "", "Client to summarise.")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	err := c.env.withApp(ctx, func(a *app.App) error {
		if c.userID == "" {
			s, err := a.Summary.AdminSummary(ctx)
			if err != nil {
				return err
			}
			renderAdminSummary(&b, s)
			return nil
		}

		u, err := a.Auth.FindUser(ctx, c.userID)
		if err != nil {
			return err
		}
		s, err := a.Summary.ClientSummary(ctx, c.userID)
		if err != nil {
			return err
		}
		renderClientSummary(&b, u, s)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building summary: %v\n", err)
		return subcommands.ExitFailure
	}
	c.env.printMarkdown(b.String())
	return subcommands.ExitSuccess
}
