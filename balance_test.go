package coinvest

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildDailyBalances(t *testing.T) {
	b := BuildDailyBalances(staggered(), day("2024-09-30"), day("2026-12-31"))

	testCases := []struct {
		on                            string
		antoine, newInvestor, others int64
	}{
		{"2024-09-29", 0, 0, 0}, // before the first day
		{"2024-09-30", 1_000_000, 0, 0},
		{"2025-01-30", 1_000_000, 0, 0},
		{"2025-01-31", 1_500_000, 500_000, 500_000},
		{"2025-09-30", 1_500_000, 1_500_000, 500_000},
		{"2026-05-30", 1_500_000, 1_500_000, 2_500_000},
		{"2030-01-01", 1_500_000, 1_500_000, 2_500_000}, // after the last day
	}
	for _, tc := range testCases {
		t.Run(tc.on, func(t *testing.T) {
			got := b.At(day(tc.on))
			want := Amounts{AED(tc.antoine), AED(tc.newInvestor), AED(tc.others)}
			for _, p := range Participants {
				if !got[p].Equal(want[p]) {
					t.Errorf("Balance(%v, %s) = %v, want %v", p, tc.on, got[p], want[p])
				}
			}
			if !b.Total(day(tc.on)).Equal(want.Sum()) {
				t.Errorf("Total(%s) = %v, want %v", tc.on, b.Total(day(tc.on)), want.Sum())
			}
		})
	}
}

func TestBuildDailyBalances_Monotonic(t *testing.T) {
	b := BuildDailyBalances(staggered(), day("2024-09-30"), day("2028-12-31"))
	var previous Amounts
	for d := range b.Range().Days() {
		current := b.At(d)
		for _, p := range Participants {
			if current[p].LessThan(previous[p]) {
				t.Fatalf("Balance(%v) decreases on %s: %v < %v", p, d, current[p], previous[p])
			}
		}
		// the total is the sum of every contribution so far.
		sum := decimal.Zero
		for e := range staggered().Events() {
			if !e.On.After(d) {
				sum = sum.Add(e.Amount)
			}
		}
		if !b.Total(d).Equal(sum) {
			t.Fatalf("Total(%s) = %v, want %v", d, b.Total(d), sum)
		}
		previous = current
	}
}

func TestBuildDailyBalances_OpeningBalance(t *testing.T) {
	// starting after the first two windows, they are folded into the first day.
	b := BuildDailyBalances(staggered(), day("2025-06-01"), day("2025-12-31"))
	if got := b.Balance(Antoine, day("2025-06-01")); !got.Equal(AED(1_500_000)) {
		t.Errorf("Balance(Antoine, start) = %v, want 1500000", got)
	}
	var events []ContributionEvent
	for e := range b.Events() {
		events = append(events, e)
	}
	if len(events) != 4 {
		t.Fatalf("Events() = %v, want 3 opening events and 1 on 2025-09-30", events)
	}
	if events[3].On != day("2025-09-30") || events[3].Participant != NewInvestor || !events[3].Amount.Equal(AED(1_000_000)) {
		t.Errorf("Events()[3] = %v", events[3])
	}
}

func TestBuildDailyBalances_Empty(t *testing.T) {
	b := BuildDailyBalances(staggered(), day("2025-01-01"), day("2024-01-01"))
	if got := b.Total(day("2025-01-01")); !got.IsZero() {
		t.Errorf("Total() = %v, want 0", got)
	}
	for e := range b.Events() {
		t.Errorf("Events() yields %v, want nothing", e)
	}
}

func TestDailyBalance_ZeroValue(t *testing.T) {
	var b DailyBalance
	if got := b.Total(day("2025-01-01")); !got.IsZero() {
		t.Errorf("Total() = %v, want 0", got)
	}
	for e := range b.Events() {
		t.Errorf("Events() yields %v, want nothing", e)
	}
}

func TestDailyBalance_Shares(t *testing.T) {
	b := BuildDailyBalances(staggered(), day("2024-09-30"), day("2026-12-31"))

	shares := b.Shares(day("2025-01-31"))
	want := []string{"0.6", "0.2", "0.2"}
	for _, p := range Participants {
		if !shares[p].Equal(decimal.RequireFromString(want[p])) {
			t.Errorf("Shares()[%v] = %v, want %s", p, shares[p], want[p])
		}
	}
	assertNear(t, "sum of shares", b.Shares(day("2025-10-01")).Sum(), decimal.NewFromInt(1))

	// nothing invested yet.
	if got := b.Shares(day("2024-01-01")); !got.Sum().IsZero() {
		t.Errorf("Shares(before) = %v, want zeros", got)
	}
}

func TestDailyBalance_EventsMatchTable(t *testing.T) {
	table := staggered()
	b := BuildDailyBalances(table, day("2024-09-30"), day("2028-12-31"))

	var fromTable, fromBalances []ContributionEvent
	for e := range table.Events() {
		fromTable = append(fromTable, e)
	}
	for e := range b.Events() {
		fromBalances = append(fromBalances, e)
	}
	if len(fromTable) != len(fromBalances) {
		t.Fatalf("Events() = %v, want %v", fromBalances, fromTable)
	}
	for i := range fromTable {
		if fromTable[i].On != fromBalances[i].On || fromTable[i].Participant != fromBalances[i].Participant || !fromTable[i].Amount.Equal(fromBalances[i].Amount) {
			t.Errorf("Events()[%d] = %v, want %v", i, fromBalances[i], fromTable[i])
		}
	}
}
