package coinvest

import (
	"time"

	"github.com/etnz/coinvest/date"
	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency every amount of the project is computed in.
const BaseCurrency = "AED"

// Project gathers everything known about the co-investment: the purchase, the price
// projection, the contractual terms and the contribution schedule.
//
// It is the entry point to evaluate a scenario, it never changes during an evaluation.
type Project struct {
	Currency      string
	Location      *time.Location // where "today" is measured
	Acquisition   Anchor
	Target        Anchor
	Terms         Terms
	Contributions ContributionTable

	// Prices replaces the linear projection between Acquisition and Target when not empty.
	Prices PriceSeries
}

// Dubai has no daylight saving time, a fixed zone does not depend on the host tz database.
var Dubai = time.FixedZone("Asia/Dubai", 4*60*60)

// DefaultProject returns the project as initially planned.
func DefaultProject() *Project {
	d := func(y int, m time.Month, day int) date.Date { return date.New(y, m, day) }
	aed := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	windows := []Window{
		{On: d(2024, 9, 30), Antoine: aed(1_188_000), Plan: aed(1_188_000)},
		{On: d(2025, 1, 31), Antoine: aed(1_188_000), Plan: aed(1_188_000)},
		{On: d(2025, 9, 30), Plan: aed(1_188_000)},
		{On: d(2026, 5, 30), Plan: aed(1_782_000)},
		{On: d(2027, 1, 30), Plan: aed(1_188_000)},
		{On: d(2027, 9, 30), Plan: aed(1_188_000)},
		{On: d(2028, 5, 30), Plan: aed(4_158_000)},
		{On: d(2028, 9, 30)},
	}
	return &Project{
		Currency:      BaseCurrency,
		Location:      Dubai,
		Acquisition:   Anchor{On: d(2024, 9, 30), Price: aed(11_800_000)},
		Target:        Anchor{On: d(2028, 5, 30), Price: aed(17_500_000)},
		Terms:         DefaultTerms(),
		Contributions: NewContributionTable(d(2025, 9, 30), windows...),
	}
}

// Today returns the current date in the project location.
func (p *Project) Today() date.Date {
	if p.Location == nil {
		return date.Today()
	}
	return date.TodayIn(p.Location)
}

// PriceSeries returns the custom price series if any, the linear projection otherwise.
func (p *Project) PriceSeries() PriceSeries {
	if p.Prices.Len() > 0 {
		return p.Prices
	}
	return LinearPriceSeries(p.Acquisition, p.Target)
}

// Scenario is the evaluation of the project on a chosen date.
type Scenario struct {
	Today       date.Date
	On          date.Date
	Prices      PriceSeries
	Balances    DailyBalance
	Warnings    []ValidationWarning
	SaleToday   Sale
	Sale        Sale
	Exit        Exit
	GainPerUnit decimal.Decimal // daily gain per unit invested, today
}

// Evaluate returns the sale today, and both the sale and the exit on 'when'.
//
// Balances are built up to the latest of today, 'when' and the end of the price series;
// the price series is extended flat up to the latest of today and 'when'.
func (p *Project) Evaluate(when, today date.Date) *Scenario {
	prices := p.PriceSeries()
	end := date.Max(today, when, prices.Range().To)
	prices = prices.Extend(date.Max(today, when))
	balances := BuildDailyBalances(p.Contributions, p.Acquisition.On, end)

	return &Scenario{
		Today:       today,
		On:          when,
		Prices:      prices,
		Balances:    balances,
		Warnings:    p.Contributions.Warnings(),
		SaleToday:   EvaluateSale(today, p.Acquisition, prices, balances, p.Terms),
		Sale:        EvaluateSale(when, p.Acquisition, prices, balances, p.Terms),
		Exit:        EvaluateExit(when, p.Acquisition, prices, p.Contributions, p.Terms),
		GainPerUnit: DailyGainPerUnit(today, p.Acquisition, prices, balances),
	}
}
