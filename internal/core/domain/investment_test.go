package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDurationDays(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day", date(2024, 1, 1), date(2024, 1, 1), 0},
		{"leap year", date(2024, 1, 1), date(2025, 1, 1), 366},
		{"partial day rounds up", date(2024, 1, 1), date(2024, 1, 2).Add(time.Hour), 2},
		{"end before start", date(2024, 1, 10), date(2024, 1, 1), -9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DurationDays(tc.start, tc.end); got != tc.want {
				t.Fatalf("DurationDays = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestProjectedReturn_OneYear(t *testing.T) {
	got := ProjectedReturn(1000, 12, date(2024, 1, 1), date(2025, 1, 1))

	// 366 days is a hair over one year, so the result sits just above 1120.
	lo, hi := decimal.NewFromInt(1120), decimal.NewFromInt(1121)
	if got.LessThan(lo) || got.GreaterThan(hi) {
		t.Fatalf("expected ~1120.00, got %s", got)
	}
	if got.Exponent() < -2 {
		t.Fatalf("expected cents precision, got %s", got)
	}
}

func TestProjectedReturn_ExactYear(t *testing.T) {
	got := ProjectedReturn(1000, 12, date(2023, 1, 1), date(2024, 1, 1))
	if !got.Equal(decimal.NewFromInt(1120)) {
		t.Fatalf("expected 1120, got %s", got)
	}
}

func TestProjectedReturn_ZeroRateKeepsPrincipal(t *testing.T) {
	got := ProjectedReturn(2500.5, 0, date(2024, 1, 1), date(2026, 6, 1))
	if !got.Equal(decimal.RequireFromString("2500.5")) {
		t.Fatalf("expected principal back, got %s", got)
	}
}

func TestProjectedReturn_NonFiniteIsZero(t *testing.T) {
	for _, in := range [][2]float64{
		{math.NaN(), 12}, {math.Inf(1), 12}, {1000, math.NaN()}, {1000, math.Inf(-1)},
	} {
		got := ProjectedReturn(in[0], in[1], date(2024, 1, 1), date(2025, 1, 1))
		if !got.IsZero() {
			t.Errorf("ProjectedReturn(%v, %v) = %s, want 0", in[0], in[1], got)
		}
	}
}

func TestPercentComplete(t *testing.T) {
	start, end := date(2024, 1, 1), date(2024, 1, 11)

	if got := PercentComplete(start, end, date(2023, 12, 31)); got != 0 {
		t.Fatalf("before start: expected 0, got %d", got)
	}
	if got := PercentComplete(start, end, date(2024, 2, 1)); got != 100 {
		t.Fatalf("after end: expected 100, got %d", got)
	}
	if got := PercentComplete(start, end, date(2024, 1, 6)); got != 50 {
		t.Fatalf("midway: expected 50, got %d", got)
	}
}

func TestInvestmentPatch_Apply(t *testing.T) {
	inv := Investment{
		ID:           "inv-1",
		UserID:       "u-1",
		Amount:       1000,
		InterestRate: 12,
		StartDate:    date(2024, 1, 1),
		EndDate:      date(2025, 1, 1),
		Status:       StatusActive,
	}
	completed := StatusCompleted

	got := InvestmentPatch{Status: &completed}.Apply(inv)

	want := inv
	want.Status = StatusCompleted
	if got != want {
		t.Fatalf("unexpected merge result:\n got %+v\nwant %+v", got, want)
	}
	if inv.Status != StatusActive {
		t.Fatalf("Apply must not mutate its input")
	}
}

func TestInvestment_Validate(t *testing.T) {
	valid := Investment{Amount: 10, InterestRate: 1, Status: StatusPending}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []Investment{
		{Amount: 0, Status: StatusPending},
		{Amount: 10, InterestRate: -1, Status: StatusPending},
		{Amount: 10, Status: "archived"},
		{Amount: math.NaN(), Status: StatusPending},
		{Amount: math.Inf(1), Status: StatusPending},
		{Amount: 10, InterestRate: math.NaN(), Status: StatusPending},
		{Amount: 10, InterestRate: math.Inf(1), Status: StatusPending},
	}
	for _, inv := range bad {
		if err := inv.Validate(); !errors.Is(err, ErrInvalidInvestment) {
			t.Fatalf("expected ErrInvalidInvestment for %+v, got %v", inv, err)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	got := FormatAmount(decimal.RequireFromString("1234.5"))
	if !strings.Contains(got, "R$") {
		t.Fatalf("expected BRL symbol, got %q", got)
	}
	if !strings.Contains(got, "50") {
		t.Fatalf("expected cents in %q", got)
	}
}

func TestSums(t *testing.T) {
	invs := []Investment{
		{Amount: 0.1, InterestRate: 0, StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 1)},
		{Amount: 0.2, InterestRate: 0, StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 1)},
	}
	if got := SumAmounts(invs); !got.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("expected exact 0.3, got %s", got)
	}
	if got := SumProjected(invs); !got.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("expected 0.3 projected, got %s", got)
	}
}
