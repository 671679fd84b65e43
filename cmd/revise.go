package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/coinvest"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type reviseCmd struct {
	date        string
	participant string
	amount      string
}

func (*reviseCmd) Name() string     { return "revise" }
func (*reviseCmd) Synopsis() string { return "change a participant contribution on an investment window" }
func (*reviseCmd) Usage() string {
	return `civ revise -d <window> -p <participant> -a <amount>

  Changes what Antoine or the new investor contributes on an editable window, and
  writes the contributions file back. Windows before the editable date are fixed, and
  other investors cannot be revised: they fund what the plan still needs.

Usage Examples:
$ civ revise -d 2026-05-30 -p new -a 500000

  Relative dates like -d +1y are resolved against today in the project location.

`
}

func (c *reviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Investment window date.")
	f.StringVar(&c.participant, "p", "", "Participant: antoine or new.")
	f.StringVar(&c.amount, "a", "", "Contribution in AED, 0 to cancel it.")
}

func (c *reviseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -d is required")
		return subcommands.ExitUsageError
	}
	who, err := coinvest.ParseParticipant(c.participant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	p, err := DecodeProject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding project: %v\n", err)
		return subcommands.ExitFailure
	}
	on, err := parseDate(c.date, p.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	revised, err := p.Contributions.Revise(on, who, amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, w := range revised.Warnings() {
		log.Printf("warning, %v", w)
	}
	if err := EncodeContributions(revised); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding contributions: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s now contributes %s on %s, other investors %s.\n",
		who, coinvest.M(amount, p.Currency).Compact(), on,
		coinvest.M(revised.Contribution(coinvest.OtherInvestors, on), p.Currency).Compact())
	return subcommands.ExitSuccess
}
