package coinvest

import (
	"github.com/etnz/coinvest/date"
	"github.com/shopspring/decimal"
)

// Terms are the contractual rates of the co-investment.
type Terms struct {
	// SaleFloor is the annual rate guaranteed to non-controlling participants in a sale.
	SaleFloor decimal.Decimal `json:"saleFloor"`
	// ExitRate is the annual rate paid on an exit before Cutoff.
	ExitRate decimal.Decimal `json:"exitRate"`
	// LateExitRate is the annual rate paid on an exit on or after Cutoff.
	LateExitRate decimal.Decimal `json:"lateExitRate"`
	Cutoff       date.Date       `json:"cutoff"`
}

// DefaultTerms returns 15% p.a. for sales and exits, and 20% p.a. for exits from 2028-09-30.
func DefaultTerms() Terms {
	return Terms{
		SaleFloor:    decimal.RequireFromString("0.15"),
		ExitRate:     decimal.RequireFromString("0.15"),
		LateExitRate: decimal.RequireFromString("0.20"),
		Cutoff:       date.New(2028, 9, 30),
	}
}

// ExitRateOn returns the annual rate of an exit on 'when'. The cutoff day itself pays the late rate.
func (t Terms) ExitRateOn(when date.Date) decimal.Decimal {
	if when.Before(t.Cutoff) {
		return t.ExitRate
	}
	return t.LateExitRate
}

// GainBreakdown details a participant's entitlement in a sale.
type GainBreakdown struct {
	Appreciation decimal.Decimal // time-weighted pro-rata share of the appreciation
	Guarantee    decimal.Decimal // guaranteed floor, always zero for Antoine
	Final        decimal.Decimal // what the participant actually receives
}

// Sale is the outcome of selling the property on a given day.
type Sale struct {
	On                date.Date
	Price             decimal.Decimal
	TotalAppreciation decimal.Decimal
	Gains             [participantCount]GainBreakdown
}

// Gain returns the breakdown of participant p.
func (s Sale) Gain(p Participant) GainBreakdown { return s.Gains[p] }

// Finals returns every participant's final amount.
func (s Sale) Finals() Amounts {
	var a Amounts
	for _, p := range Participants {
		a[p] = s.Gains[p].Final
	}
	return a
}

// Exit is the outcome of the contractual buy-out on a given day.
type Exit struct {
	On                date.Date
	Price             decimal.Decimal
	TotalAppreciation decimal.Decimal
	Rate              decimal.Decimal // annual guarantee rate that applied
	Amounts           Amounts
}

// appreciation returns the price on 'when' and the appreciation since acquisition, never negative.
func appreciation(when date.Date, acq Anchor, prices PriceSeries) (price, total decimal.Decimal) {
	price = prices.PriceAt(when)
	return price, decimal.Max(price.Sub(acq.Price), decimal.Zero)
}

// EvaluateSale computes what each participant receives if the property is sold on 'when'.
//
// The appreciation since acquisition is spread evenly over the days held, and each day's
// portion is shared pro-rata to that day's balances. New and other investors receive the
// better of their share and their guarantee at terms.SaleFloor. Antoine receives the residual,
// so that the final amounts always add up to the total appreciation. The residual can be lower
// than his own share, even negative.
func EvaluateSale(when date.Date, acq Anchor, prices PriceSeries, balances DailyBalance, terms Terms) Sale {
	sale := Sale{On: when}
	if !when.After(acq.On) {
		sale.Price = acq.Price
		return sale
	}
	sale.Price, sale.TotalAppreciation = appreciation(when, acq, prices)

	totalDays := date.Days(acq.On, when)
	daily := sale.TotalAppreciation.Div(decimal.NewFromInt(int64(totalDays)))

	var shares Amounts
	for day := range (date.Range{From: acq.On.Add(1), To: when}).Days() {
		s := balances.Shares(day)
		for _, p := range Participants {
			shares[p] = shares[p].Add(s[p])
		}
	}

	guarantees := Guarantees(when, balances.Events(), terms.SaleFloor)

	others := decimal.Zero
	for _, p := range Participants {
		g := GainBreakdown{Appreciation: shares[p].Mul(daily)}
		if p.Controlling() {
			sale.Gains[p] = g
			continue
		}
		g.Guarantee = guarantees[p]
		g.Final = decimal.Max(g.Appreciation, g.Guarantee)
		others = others.Add(g.Final)
		sale.Gains[p] = g
	}
	sale.Gains[Antoine].Final = sale.TotalAppreciation.Sub(others)
	return sale
}

// EvaluateExit computes what each participant receives if the contractual exit happens on 'when'.
//
// New and other investors receive exactly their guarantee at the exit rate of 'when'
// (see Terms.ExitRateOn). Antoine receives the residual of the total appreciation, possibly negative.
func EvaluateExit(when date.Date, acq Anchor, prices PriceSeries, contributions ContributionTable, terms Terms) Exit {
	exit := Exit{On: when, Rate: terms.ExitRateOn(when)}
	if !when.After(acq.On) {
		exit.Price = acq.Price
		return exit
	}
	exit.Price, exit.TotalAppreciation = appreciation(when, acq, prices)

	guarantees := Guarantees(when, contributions.Events(), exit.Rate)
	others := decimal.Zero
	for _, p := range Participants {
		if p.Controlling() {
			continue
		}
		exit.Amounts[p] = guarantees[p]
		others = others.Add(guarantees[p])
	}
	exit.Amounts[Antoine] = exit.TotalAppreciation.Sub(others)
	return exit
}

// DailyGainPerUnit returns the appreciation earned on 'when' by each unit of currency invested:
// the average daily appreciation since acquisition divided by the total balance on 'when'.
func DailyGainPerUnit(when date.Date, acq Anchor, prices PriceSeries, balances DailyBalance) decimal.Decimal {
	if !when.After(acq.On) {
		return decimal.Zero
	}
	invested := balances.Total(when)
	if !invested.IsPositive() {
		return decimal.Zero
	}
	_, total := appreciation(when, acq, prices)
	daily := total.Div(decimal.NewFromInt(int64(date.Days(acq.On, when))))
	return daily.Div(invested)
}
