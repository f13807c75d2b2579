package domain

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency of every amount handled by the club.
const Currency = money.BRL

// FormatAmount renders a decimal amount with the club currency's symbol and separators.
func FormatAmount(d decimal.Decimal) string {
	cur := money.New(0, Currency).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SumAmounts adds the principal of every investment exactly.
func SumAmounts(invs []Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invs {
		total = total.Add(decimal.NewFromFloat(inv.Amount))
	}
	return total
}

// SumProjected adds the projected value of every investment.
func SumProjected(invs []Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invs {
		total = total.Add(inv.Projected())
	}
	return total
}
