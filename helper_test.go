package coinvest

import (
	"testing"

	"github.com/etnz/coinvest/date"
	"github.com/shopspring/decimal"
)

// day is a helper for test to create dates from const.
func day(s string) date.Date { return date.MustParse(s) }

// AED is a helper for test to create base currency amounts from const.
func AED(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

var tolerance = decimal.New(1, -6)

// assertNear fails the test if got and want differ by more than 1e-6.
func assertNear(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if got.Sub(want).Abs().GreaterThan(tolerance) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

// staggered returns a schedule where the three participants fund at different dates,
// with one window over plan.
func staggered() ContributionTable {
	return NewContributionTable(day("2025-09-30"),
		Window{On: day("2024-09-30"), Antoine: AED(1_000_000), Plan: AED(1_000_000)},
		Window{On: day("2025-01-31"), Antoine: AED(500_000), NewInvestor: AED(500_000), Plan: AED(1_500_000)},
		Window{On: day("2025-09-30"), NewInvestor: AED(1_000_000), Plan: AED(800_000)},
		Window{On: day("2026-05-30"), Plan: AED(2_000_000)},
		Window{On: day("2028-09-30")},
	)
}

var (
	acquisition = Anchor{On: day("2024-09-30"), Price: AED(11_800_000)}
	target      = Anchor{On: day("2028-05-30"), Price: AED(17_500_000)}
)
