package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/coinvest"
	"github.com/etnz/coinvest/date"
)

// BalancesMarkdown renders the cumulative balances at the end of every period of r.
func BalancesMarkdown(b coinvest.DailyBalance, r date.Range, period date.Period, d Display) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Balances from %s to %s in %s\n\n", r.From, r.To, d.Currency())

	fmt.Fprint(&sb, "| Date |")
	for _, p := range coinvest.Participants {
		fmt.Fprintf(&sb, " %s |", p)
	}
	fmt.Fprintln(&sb, " Total |")
	fmt.Fprintln(&sb, "|:---|---:|---:|---:|---:|")

	for on := range r.Ends(period) {
		balances := b.At(on)
		fmt.Fprintf(&sb, "| %s |", on)
		for _, p := range coinvest.Participants {
			share := coinvest.PercentOf(b.Shares(on).Get(p))
			fmt.Fprintf(&sb, " %s (%s) |", d.Amount(balances.Get(p)), share.Short())
		}
		fmt.Fprintf(&sb, " %s |\n", d.Amount(b.Total(on)))
	}
	return sb.String()
}
