package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/coinvest/renderer"
	"github.com/google/subcommands"
)

type saleCmd struct {
	evaluation
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "display the allocation of a sale on a date" }
func (*saleCmd) Usage() string {
	return `civ sale [-d <date>] [-c <currency>] [-prices <file>]

  New and other investors receive the better of their time-weighted share of the
  appreciation and their guarantee. Antoine receives the rest.
`
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, d, status := c.evaluate()
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.RenderSale(renderer.NewSale(fmt.Sprintf("Sale on %s", s.On), s.Sale, d)))
	return subcommands.ExitSuccess
}

type exitCmd struct {
	evaluation
}

func (*exitCmd) Name() string     { return "exit" }
func (*exitCmd) Synopsis() string { return "display the allocation of the contractual exit on a date" }
func (*exitCmd) Usage() string {
	return `civ exit [-d <date>] [-c <currency>] [-prices <file>]

  New and other investors receive exactly their guarantee, at the late rate from the
  cutoff date on. Antoine receives the rest.
`
}

func (c *exitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, d, status := c.evaluate()
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.RenderExit(renderer.NewExit(fmt.Sprintf("Exit on %s", s.On), s.Exit, d)))
	return subcommands.ExitSuccess
}
