package coinvest

import (
	"iter"

	"github.com/etnz/coinvest/date"
	"github.com/shopspring/decimal"
)

// Anchor is the property unit price on a given day.
type Anchor struct {
	On    date.Date       `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// PriceSeries maps days to the property estimated unit price.
//
// A PriceSeries is immutable once built.
type PriceSeries struct {
	prices *date.History[decimal.Decimal]
}

// NewPriceSeries returns a series made of the given points, possibly sparse.
func NewPriceSeries(points ...Anchor) PriceSeries {
	h := new(date.History[decimal.Decimal])
	for _, p := range points {
		h.Append(p.On, p.Price)
	}
	return PriceSeries{prices: h}
}

// LinearPriceSeries returns one price per day from acq.On to target.On inclusive, moving
// linearly from acq.Price to target.Price.
//
// When target is not after acq the series holds the single acquisition point.
func LinearPriceSeries(acq, target Anchor) PriceSeries {
	h := new(date.History[decimal.Decimal])
	n := date.Days(acq.On, target.On)
	if n <= 0 {
		h.Append(acq.On, acq.Price)
		return PriceSeries{prices: h}
	}
	span := target.Price.Sub(acq.Price)
	total := decimal.NewFromInt(int64(n))
	for i := 0; i <= n; i++ {
		step := span.Mul(decimal.NewFromInt(int64(i))).Div(total)
		h.Append(acq.On.Add(i), acq.Price.Add(step))
	}
	return PriceSeries{prices: h}
}

func (s PriceSeries) history() *date.History[decimal.Decimal] {
	if s.prices == nil {
		return new(date.History[decimal.Decimal])
	}
	return s.prices
}

// Len returns the number of native points.
func (s PriceSeries) Len() int { return s.history().Len() }

// Range returns the native range of the series.
func (s PriceSeries) Range() date.Range {
	from, _ := s.history().Earliest()
	to, _ := s.history().Latest()
	return date.Range{From: from, To: to}
}

// Last returns the last native point of the series.
func (s PriceSeries) Last() Anchor {
	on, price := s.history().Latest()
	return Anchor{On: on, Price: price}
}

// Values returns an iterator over the native points of the series.
func (s PriceSeries) Values() iter.Seq2[date.Date, decimal.Decimal] { return s.history().Values() }

// PriceAt returns the price on 'day'.
//
// Days missing inside the native range are linearly interpolated from their neighbours.
// Days before the range take the first price, days after it the last price: the series
// never extrapolates any appreciation beyond its end. An empty series prices everything at zero.
func (s PriceSeries) PriceAt(day date.Date) decimal.Decimal {
	h := s.history()
	if price, ok := h.Get(day); ok {
		return price
	}
	before, hasBefore, after, hasAfter := h.Surrounding(day)
	switch {
	case hasBefore && hasAfter:
		elapsed := decimal.NewFromInt(int64(date.Days(before.On, day)))
		span := decimal.NewFromInt(int64(date.Days(before.On, after.On)))
		return before.Value.Add(after.Value.Sub(before.Value).Mul(elapsed).Div(span))
	case hasBefore:
		return before.Value
	case hasAfter:
		return after.Value
	default:
		return decimal.Zero
	}
}

// Extend returns a series whose last price is repeated every day up to 'to'.
// The receiver is returned unchanged if it already covers 'to' or is empty.
func (s PriceSeries) Extend(to date.Date) PriceSeries {
	h := s.history()
	last, price := h.Latest()
	if h.Len() == 0 || !to.After(last) {
		return s
	}
	extended := h.Clone()
	for d := last.Add(1); !d.After(to); d = d.Add(1) {
		extended.Append(d, price)
	}
	return PriceSeries{prices: extended}
}
