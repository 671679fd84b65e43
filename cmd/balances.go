package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinvest"
	"github.com/etnz/coinvest/date"
	"github.com/etnz/coinvest/renderer"
	"github.com/google/subcommands"
)

type balancesCmd struct {
	from, to string
	period   string
	currency string
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display the invested balances over time" }
func (*balancesCmd) Usage() string {
	return `civ balances [-from <date>] [-to <date>] [-period <period>] [-c <currency>]

  Displays each participant cumulative balance and share at the end of every period,
  from the acquisition to the target date by default.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First date, defaults to the acquisition date.")
	f.StringVar(&c.to, "to", "", "Last date, defaults to the target date.")
	f.StringVar(&c.period, "period", "monthly", "Period between rows: day, week, month, quarter or year.")
	f.StringVar(&c.currency, "c", coinvest.BaseCurrency, "Display currency: AED, USD or EUR.")
}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding project: %v\n", err)
		return subcommands.ExitFailure
	}
	r, period, status := parseRange(c.from, c.to, c.period, p)
	if status != subcommands.ExitSuccess {
		return status
	}
	d, err := NewDisplay(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	b := coinvest.BuildDailyBalances(p.Contributions, p.Acquisition.On, date.Max(r.To, p.Acquisition.On))
	printMarkdown(renderer.BalancesMarkdown(b, r, period, d))
	return subcommands.ExitSuccess
}

// parseRange parses the -from, -to and -period flags, dates default to the project horizon.
func parseRange(from, to, period string, p *coinvest.Project) (date.Range, date.Period, subcommands.ExitStatus) {
	r := date.Range{From: p.Acquisition.On, To: p.Target.On}
	var err error
	if from != "" {
		if r.From, err = date.ParseFrom(from, p.Today()); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return r, 0, subcommands.ExitUsageError
		}
	}
	if to != "" {
		if r.To, err = date.ParseFrom(to, p.Today()); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return r, 0, subcommands.ExitUsageError
		}
	}
	if r.IsEmpty() {
		fmt.Fprintf(os.Stderr, "Error: %s is after %s\n", r.From, r.To)
		return r, 0, subcommands.ExitUsageError
	}
	pp, err := date.ParsePeriod(period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return r, 0, subcommands.ExitUsageError
	}
	return r, pp, subcommands.ExitSuccess
}
