package coinvest

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// FX converts base currency amounts into display currencies.
//
// Conversion happens after every computation, amounts are never converted back.
type FX struct {
	base  string
	rates map[string]decimal.Decimal // units of base currency per unit of currency
}

// DefaultFX returns the reference rates: 3.6727 AED per USD and 4.31371 AED per EUR.
func DefaultFX() FX {
	return NewFX(BaseCurrency).
		With("USD", decimal.RequireFromString("3.6727")).
		With("EUR", decimal.RequireFromString("4.31371"))
}

// NewFX returns an FX that can only convert into the base currency.
func NewFX(base string) FX {
	return FX{base: base, rates: map[string]decimal.Decimal{base: decimal.NewFromInt(1)}}
}

// With returns a copy of fx where one unit of 'currency' is worth 'basePerUnit' units of the base currency.
func (fx FX) With(currency string, basePerUnit decimal.Decimal) FX {
	rates := maps.Clone(fx.rates)
	rates[strings.ToUpper(currency)] = basePerUnit
	return FX{base: fx.base, rates: rates}
}

// Base returns the base currency.
func (fx FX) Base() string { return fx.base }

// Currencies returns the currencies fx can convert to, sorted.
func (fx FX) Currencies() []string { return slices.Sorted(maps.Keys(fx.rates)) }

// Convert returns 'amount', expressed in the base currency, in 'currency'.
func (fx FX) Convert(amount decimal.Decimal, currency string) (Money, error) {
	currency = strings.ToUpper(currency)
	rate, ok := fx.rates[currency]
	if !ok || !rate.IsPositive() {
		return Money{}, fmt.Errorf("no exchange rate from %s to %s", fx.base, currency)
	}
	return M(amount.Div(rate), currency), nil
}

// FetchRate reads a single rate from a JSON document served at addr, at the given JSONPath.
//
// The value can be a json number or a string, the first one is used when the path matches a list.
func FetchRate(client *http.Client, addr, path string) (decimal.Decimal, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error in wget %q: %w", addr, err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %q: %q %w", addr, path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	var rate decimal.Decimal
	switch v := jval.(type) {
	case float64:
		rate = decimal.NewFromFloat(v)
	case string:
		rate, err = decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v), ",", "."))
		if err != nil {
			return decimal.Zero, fmt.Errorf("cannot read rate from %q: invalid string %q: %w", addr, v, err)
		}
	default:
		return decimal.Zero, fmt.Errorf("cannot read rate from %q: %q is neither a float nor a string: %v", addr, path, jval)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("cannot read rate from %q: %q is not positive: %v", addr, path, rate)
	}
	return rate, nil
}
