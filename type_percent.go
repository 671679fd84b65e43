package coinvest

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

// PercentOf converts a rate like 0.15 into 15%.
func PercentOf(rate decimal.Decimal) Percent {
	return Percent(rate.Shift(2).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// Short formats the percent without decimals, as used in rate labels like "20% p.a.".
func (p Percent) Short() string {
	return fmt.Sprintf("%.0f%%", p)
}
