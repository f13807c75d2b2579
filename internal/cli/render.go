package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankapp/investment-club/internal/app"
	"github.com/bankapp/investment-club/internal/core/domain"
	"github.com/bankapp/investment-club/internal/core/ports"
)

// renderClients writes the client directory as a markdown table.
func renderClients(b *strings.Builder, users []domain.User) {
	b.WriteString("# Clients\n\n")
	if len(users) == 0 {
		b.WriteString("No registered clients.\n")
		return
	}
	b.WriteString("| ID | Name | Email | Phone | Intended | Registered |\n")
	b.WriteString("|---|---|---|---|---:|---|\n")
	for _, u := range users {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			u.ID, u.FullName, u.Email, u.Phone,
			domain.FormatAmount(decimalOf(u.IntendedInvestment)),
			u.CreatedAt.Format(dateLayout))
	}
}

// renderInvestments writes one row per investment with its progress figures.
func renderInvestments(b *strings.Builder, title string, views []ports.InvestmentView) {
	fmt.Fprintf(b, "# %s\n\n", title)
	if len(views) == 0 {
		b.WriteString("No investments.\n")
		return
	}
	b.WriteString("| ID | Client | Client ID | Amount | Rate | Start | End | Status | Days | Complete | Projected |\n")
	b.WriteString("|---|---|---|---:|---:|---|---|---|---:|---:|---:|\n")
	for _, v := range views {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s%% | %s | %s | %s | %d | %d%% | %s |\n",
			v.ID, v.ClientName, v.UserID,
			domain.FormatAmount(decimalOf(v.Amount)),
			decimalOf(v.InterestRate).String(),
			v.StartDate.Format(dateLayout), v.EndDate.Format(dateLayout),
			v.Status, v.DurationDays, v.PercentComplete,
			domain.FormatAmount(v.Projected))
	}
}

func renderAdminSummary(b *strings.Builder, s *ports.AdminSummary) {
	b.WriteString("# Club summary\n\n")
	b.WriteString("| | |\n|---|---:|\n")
	fmt.Fprintf(b, "| Clients | %d |\n", s.ClientCount)
	fmt.Fprintf(b, "| Active investments | %d |\n", s.ActiveInvestments)
	fmt.Fprintf(b, "| Total invested | %s |\n", domain.FormatAmount(s.TotalInvested))
	fmt.Fprintf(b, "| Total projected | %s |\n", domain.FormatAmount(s.TotalProjected))
}

func renderClientSummary(b *strings.Builder, u *domain.User, s *ports.ClientSummary) {
	fmt.Fprintf(b, "# %s\n\n", u.FullName)
	fmt.Fprintf(b, "- Email: %s\n", u.Email)
	fmt.Fprintf(b, "- Total invested: %s\n", domain.FormatAmount(s.TotalInvested))
	fmt.Fprintf(b, "- Total projected: %s\n\n", domain.FormatAmount(s.TotalProjected))
	renderInvestments(b, "Investments", s.Investments)
}

// renderStored writes a single investment with its owner's name resolved.
func renderStored(ctx context.Context, b *strings.Builder, a *app.App, title string, inv domain.Investment) error {
	views, err := a.Summary.Views(ctx, []domain.Investment{inv})
	if err != nil {
		return err
	}
	renderInvestments(b, title, views)
	return nil
}

func decimalOf(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
