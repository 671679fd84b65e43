package renderer

import (
	"fmt"

	"github.com/etnz/coinvest"
	"github.com/shopspring/decimal"
)

// Display converts base currency amounts into the currency chosen for display.
//
// Conversion is the very last step: every amount has been computed in the base currency.
type Display struct {
	fx       coinvest.FX
	currency string
}

// NewDisplay returns a Display in 'currency', which must be known to fx.
func NewDisplay(fx coinvest.FX, currency string) (Display, error) {
	m, err := fx.Convert(decimal.Zero, currency)
	if err != nil {
		return Display{}, fmt.Errorf("cannot display amounts in %q: %w", currency, err)
	}
	return Display{fx: fx, currency: m.Currency()}, nil
}

// Currency returns the display currency code.
func (d Display) Currency() string { return d.currency }

// Money returns the base currency 'amount' in the display currency.
func (d Display) Money(amount decimal.Decimal) coinvest.Money {
	m, err := d.fx.Convert(amount, d.currency)
	if err != nil {
		// NewDisplay checked the currency.
		panic(err)
	}
	return m
}

// Amount formats a base currency 'amount' in the display currency, rounded to the major unit.
func (d Display) Amount(amount decimal.Decimal) string { return d.Money(amount).Compact() }
