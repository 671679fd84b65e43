// Command civ evaluates what every participant of the co-investment receives
// on a sale or on the contractual exit.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/coinvest/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// exits when invoked by the shell for completion, 'COMP_INSTALL=1 civ' installs it.
	completion(commander).Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes every subcommand and its flags to the shell.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predictFlag(f.Name)
	})
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictFlag(f.Name)
		})
		if c.Name() == "topic" {
			sub.Args = predict.Set{"readme", "sale", "exit", "contributions", "files", "*"}
		}
		root.Sub[c.Name()] = sub
	})
	return root
}

// predictFlag returns the values to suggest for a flag, by name.
func predictFlag(name string) complete.Predictor {
	switch name {
	case "project-file":
		return predict.Files("*.json")
	case "contributions-file":
		return predict.Files("*.jsonl")
	case "prices":
		return predict.Or(predict.Files("*.csv"), predict.Files("*.jsonl"))
	case "o":
		return predict.Files("*.csv")
	case "c":
		return predict.Set{"AED", "USD", "EUR"}
	case "p":
		return predict.Set{"antoine", "new"}
	case "period":
		return predict.Set{"daily", "weekly", "monthly", "quarterly", "yearly"}
	case "raw", "fmt":
		return predict.Nothing
	default:
		return predict.Something
	}
}
