package coinvest

import (
	"iter"

	"github.com/etnz/coinvest/date"
	"github.com/shopspring/decimal"
)

// daysPerYear is the actual/365 day-count denominator.
var daysPerYear = decimal.NewFromInt(365)

// Accrual returns the simple interest earned by 'amount' from 'from' to 'to' at the annual 'rate',
// actual/365, zero unless 'from' is strictly before 'to'.
func Accrual(amount, rate decimal.Decimal, from, to date.Date) decimal.Decimal {
	days := date.Days(from, to)
	if days <= 0 {
		return decimal.Zero
	}
	return amount.Mul(rate).Mul(decimal.NewFromInt(int64(days))).Div(daysPerYear)
}

// Guarantees returns, for each participant, the guarantee accrued on 'when' at the annual 'rate'.
//
// Every contribution earns its own simple interest from its own date. Contributions made on or
// after 'when' earn nothing yet.
func Guarantees(when date.Date, events iter.Seq[ContributionEvent], rate decimal.Decimal) Amounts {
	var g Amounts
	for e := range events {
		if !e.On.Before(when) {
			continue
		}
		g[e.Participant] = g[e.Participant].Add(Accrual(e.Amount, rate, e.On, when))
	}
	return g
}
