package coinvest

import (
	"iter"

	"github.com/etnz/coinvest/date"
	"github.com/shopspring/decimal"
)

// DailyBalance is the cumulative invested balance of each participant, day by day.
type DailyBalance struct {
	days     date.Range
	balances []Amounts         // one per day of 'days'
	totals   []decimal.Decimal // sum of balances, per day
}

// BuildDailyBalances expands the contribution table into cumulative daily balances from start to end inclusive.
//
// Each window amount joins the running total on its date and stays there. Contributions dated
// before start are part of the opening balance, contributions after end are ignored.
// end should cover every day a caller will evaluate: today, the evaluation date and the end of the price series.
func BuildDailyBalances(contributions ContributionTable, start, end date.Date) DailyBalance {
	b := DailyBalance{days: date.Range{From: start, To: end}}
	n := b.days.Len()
	if n == 0 {
		return b
	}
	b.balances = make([]Amounts, n)
	b.totals = make([]decimal.Decimal, n)

	var running Amounts
	windows := contributions.windows
	next := 0
	i := 0
	for day := range b.days.Days() {
		for next < len(windows) && !windows[next].On.After(day) {
			for _, p := range Participants {
				running[p] = running[p].Add(windows[next].Contribution(p))
			}
			next++
		}
		b.balances[i] = running
		b.totals[i] = running.Sum()
		i++
	}
	return b
}

// Range returns the days covered by the balances.
func (b DailyBalance) Range() date.Range { return b.days }

// index returns the position of 'on' in the balances, clamped to the last day,
// or -1 if 'on' is before the first day or there are no balances.
func (b DailyBalance) index(on date.Date) int {
	if len(b.balances) == 0 || on.Before(b.days.From) {
		return -1
	}
	return min(date.Days(b.days.From, on), len(b.balances)-1)
}

// At returns every participant balance on 'on'.
//
// Balances are zero before the first day and stay constant after the last one.
func (b DailyBalance) At(on date.Date) Amounts {
	i := b.index(on)
	if i < 0 {
		return Amounts{}
	}
	return b.balances[i]
}

// Balance returns the balance of p on 'on'.
func (b DailyBalance) Balance(p Participant, on date.Date) decimal.Decimal { return b.At(on)[p] }

// Total returns the sum of all participants balances on 'on'.
func (b DailyBalance) Total(on date.Date) decimal.Decimal {
	i := b.index(on)
	if i < 0 {
		return decimal.Zero
	}
	return b.totals[i]
}

// Shares returns each participant's fraction of the total balance on 'on', all zeros when nothing is invested.
func (b DailyBalance) Shares(on date.Date) Amounts {
	var shares Amounts
	total := b.Total(on)
	if total.IsZero() {
		return shares
	}
	balances := b.At(on)
	for _, p := range Participants {
		shares[p] = balances[p].Div(total)
	}
	return shares
}

// Events returns the contributions implied by the balances: the opening balance on the
// first day, then every day to day increase, in chronological order.
func (b DailyBalance) Events() iter.Seq[ContributionEvent] {
	return func(yield func(ContributionEvent) bool) {
		if len(b.balances) == 0 {
			return
		}
		var previous Amounts
		i := 0
		for day := range b.days.Days() {
			for _, p := range Participants {
				delta := b.balances[i][p].Sub(previous[p])
				if delta.IsZero() {
					continue
				}
				if !yield(ContributionEvent{On: day, Participant: p, Amount: delta}) {
					return
				}
			}
			previous = b.balances[i]
			i++
		}
	}
}
