package cmd

import (
	"context"
	"flag"

	"github.com/etnz/coinvest/renderer"
	"github.com/google/subcommands"
)

type scenarioCmd struct {
	evaluation
}

func (*scenarioCmd) Name() string     { return "scenario" }
func (*scenarioCmd) Synopsis() string { return "display the sale today, and the sale and exit on a date" }
func (*scenarioCmd) Usage() string {
	return `civ scenario [-d <date>] [-today <date>] [-c <currency>] [-prices <file>]

  Evaluates the project: what each participant receives if the property is sold today,
  sold on the evaluation date, or bought out on the evaluation date.

Usage Examples:
# The contractual exit date.
$ civ scenario -d 2028-09-30

# In six months, in US dollars.
$ civ scenario -d +6m -c USD

`
}

func (c *scenarioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, d, status := c.evaluate()
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.ScenarioMarkdown(s, d))
	return subcommands.ExitSuccess
}
