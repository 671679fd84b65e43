package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/coinvest"
	"github.com/shopspring/decimal"
)

// ContributionsMarkdown renders the contribution schedule, one line per investment window.
func ContributionsMarkdown(t coinvest.ContributionTable, d Display) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Contributions in %s\n\n", d.Currency())
	fmt.Fprintf(&b, "Windows from %s can be revised.\n\n", t.EditableFrom())

	ConditionalBlock(&b, func(w io.Writer) bool {
		warnings := t.Warnings()
		fmt.Fprintln(w, "> [!WARNING]")
		fmt.Fprintln(w, "> Named contributions exceed the plan:")
		for _, v := range warnings {
			fmt.Fprintf(w, "> - %s\n", warning(v, d))
		}
		fmt.Fprintln(w)
		return len(warnings) > 0
	})

	fmt.Fprint(&b, "| Date | Plan |")
	for _, p := range coinvest.Participants {
		fmt.Fprintf(&b, " %s |", p)
	}
	fmt.Fprintln(&b, " |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|:---|")

	plan := decimal.Zero
	for _, win := range t.Windows() {
		plan = plan.Add(win.Plan)
		status := "fixed"
		if t.Editable(win.On) {
			status = "editable"
		}
		fmt.Fprintf(&b, "| %s | %s |", win.On, d.Amount(win.Plan))
		for _, p := range coinvest.Participants {
			fmt.Fprintf(&b, " %s |", d.Amount(win.Contribution(p)))
		}
		fmt.Fprintf(&b, " %s |\n", status)
	}

	totals := t.Totals()
	fmt.Fprintf(&b, "| **Total** | **%s** |", d.Amount(plan))
	for _, p := range coinvest.Participants {
		fmt.Fprintf(&b, " **%s** |", d.Amount(totals.Get(p)))
	}
	fmt.Fprintln(&b, " |")
	return b.String()
}
