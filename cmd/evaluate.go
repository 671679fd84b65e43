package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinvest"
	"github.com/etnz/coinvest/renderer"
	"github.com/google/subcommands"
)

// evaluation holds the flags shared by every command that evaluates the project on a date.
type evaluation struct {
	date     string
	today    string
	currency string
	prices   string
}

func (e *evaluation) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.date, "d", "", "Evaluation date, defaults to today. See the user manual for supported date formats.")
	f.StringVar(&e.today, "today", "", "Overrides today's date, in the project location.")
	f.StringVar(&e.currency, "c", coinvest.BaseCurrency, "Display currency: AED, USD or EUR.")
	f.StringVar(&e.prices, "prices", "", "CSV or JSONL file of date,price points replacing the linear projection.")
}

// evaluate loads the project and evaluates it, errors are reported on stderr.
func (e *evaluation) evaluate() (*coinvest.Scenario, renderer.Display, subcommands.ExitStatus) {
	p, err := DecodeProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding project: %v\n", err)
		return nil, renderer.Display{}, subcommands.ExitFailure
	}
	if e.prices != "" {
		if p.Prices, err = DecodePrices(e.prices); err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding prices: %v\n", err)
			return nil, renderer.Display{}, subcommands.ExitFailure
		}
	}

	today, err := parseDate(e.today, p.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing today's date: %v\n", err)
		return nil, renderer.Display{}, subcommands.ExitUsageError
	}
	on, err := parseDate(e.date, today)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return nil, renderer.Display{}, subcommands.ExitUsageError
	}

	d, err := NewDisplay(e.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, renderer.Display{}, subcommands.ExitUsageError
	}
	return p.Evaluate(on, today), d, subcommands.ExitSuccess
}
