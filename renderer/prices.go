package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/coinvest"
	"github.com/etnz/coinvest/date"
)

// PricesMarkdown renders the price series at the end of every period of r.
func PricesMarkdown(s coinvest.PriceSeries, acq coinvest.Anchor, r date.Range, period date.Period, d Display) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Prices from %s to %s in %s\n\n", r.From, r.To, d.Currency())
	fmt.Fprintln(&sb, "| Date | Price | Appreciation |")
	fmt.Fprintln(&sb, "|:---|---:|---:|")
	for on := range r.Ends(period) {
		price := s.PriceAt(on)
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", on, d.Amount(price), d.Money(price.Sub(acq.Price)).SignedString())
	}
	return sb.String()
}
