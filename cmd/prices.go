package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinvest"
	"github.com/etnz/coinvest/renderer"
	"github.com/google/subcommands"
)

type pricesCmd struct {
	from, to string
	period   string
	currency string
	prices   string
	output   string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display or export the price projection" }
func (*pricesCmd) Usage() string {
	return `civ prices [-from <date>] [-to <date>] [-period <period>] [-c <currency>] [-prices <file>] [-o <file.csv>]

  Displays the property price at the end of every period: the linear projection from the
  acquisition to the target, or the series read from -prices.

  With -o, every daily price is written as CSV instead, ready to be edited and read back with -prices.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First date, defaults to the acquisition date.")
	f.StringVar(&c.to, "to", "", "Last date, defaults to the target date.")
	f.StringVar(&c.period, "period", "quarterly", "Period between rows: day, week, month, quarter or year.")
	f.StringVar(&c.currency, "c", coinvest.BaseCurrency, "Display currency: AED, USD or EUR.")
	f.StringVar(&c.prices, "prices", "", "CSV or JSONL file of date,price points replacing the linear projection.")
	f.StringVar(&c.output, "o", "", "Export the daily series to this CSV file.")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding project: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.prices != "" {
		if p.Prices, err = DecodePrices(c.prices); err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding prices: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	series := p.PriceSeries()

	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		if err := coinvest.ExportPricesCSV(out, series); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting prices: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%d prices written to '%s'.\n", series.Len(), c.output)
		return subcommands.ExitSuccess
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
	printMarkdown(renderer.PricesMarkdown(series.Extend(r.To), p.Acquisition, r, period, d))
	return subcommands.ExitSuccess
}
