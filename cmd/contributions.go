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

type contributionsCmd struct {
	currency string
	format   bool
}

func (*contributionsCmd) Name() string     { return "contributions" }
func (*contributionsCmd) Synopsis() string { return "display the contribution schedule" }
func (*contributionsCmd) Usage() string {
	return `civ contributions [-c <currency>] [-fmt]

  Displays every investment window, with the plan and each participant contribution.
  Other investors always fund what the plan still needs.

  With -fmt, the contributions file is rewritten in canonical form.
`
}

func (c *contributionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", coinvest.BaseCurrency, "Display currency: AED, USD or EUR.")
	f.BoolVar(&c.format, "fmt", false, "Rewrite the contributions file in canonical form.")
}

func (c *contributionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding project: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.format {
		if err := EncodeContributions(p.Contributions); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding contributions: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Contributions file '%s' has been formatted.\n", *contributionsFile)
		return subcommands.ExitSuccess
	}

	d, err := NewDisplay(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.ContributionsMarkdown(p.Contributions, d))
	return subcommands.ExitSuccess
}
