// Package cmd implements the CLI application to evaluate a co-investment.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/coinvest"
	"github.com/etnz/coinvest/date"
	"github.com/etnz/coinvest/renderer"
	"github.com/google/subcommands"
)

// Commands lists every subcommand, a main package registers them on its commander.
var Commands = []subcommands.Command{
	&scenarioCmd{},
	&saleCmd{},
	&exitCmd{},
	&contributionsCmd{},
	&reviseCmd{},
	&balancesCmd{},
	&pricesCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var projectFile = flag.String("project-file", "project.json", "Path to the project file: acquisition, target and terms (JSON format)")
var contributionsFile = flag.String("contributions-file", "contributions.jsonl", "Path to the contributions file, one investment window per line (JSONL format)")
var fxURL = flag.String("fx-url", "", "URL of a JSON document holding the live exchange rate of the display currency, '{currency}' is replaced by its code")
var fxPath = flag.String("fx-path", "$.rates.AED", "JSONPath of the rate in the -fx-url document, in AED per unit of the display currency")
var rawMarkdown = flag.Bool("raw", false, "print reports as plain markdown instead of rendering them for the terminal")

// DecodeProject reads the project and contributions files.
//
// A missing file is not an error: the project as initially planned is used instead.
func DecodeProject() (*coinvest.Project, error) {
	p, err := decodeProjectFile(*projectFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, project file does not exist, using the default project instead")
		p, err = coinvest.DefaultProject(), nil
	}
	if err != nil {
		return nil, err
	}

	table, err := decodeContributionsFile(*contributionsFile, p.Contributions.EditableFrom())
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, contributions file does not exist, using the default schedule instead")
		table, err = coinvest.NewContributionTable(p.Contributions.EditableFrom(), coinvest.DefaultProject().Contributions.Windows()...), nil
	}
	if err != nil {
		return nil, err
	}
	p.Contributions = table

	for _, w := range p.Contributions.Warnings() {
		log.Printf("warning, %v", w)
	}
	return p, nil
}

func decodeProjectFile(name string) (*coinvest.Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := coinvest.DecodeProject(f)
	if err != nil {
		return nil, fmt.Errorf("error reading project file %q: %w", name, err)
	}
	return p, nil
}

func decodeContributionsFile(name string, editableFrom date.Date) (coinvest.ContributionTable, error) {
	f, err := os.Open(name)
	if err != nil {
		return coinvest.ContributionTable{}, err
	}
	defer f.Close()
	t, err := coinvest.DecodeContributions(f, editableFrom)
	if err != nil {
		return coinvest.ContributionTable{}, fmt.Errorf("error reading contributions file %q: %w", name, err)
	}
	return t, nil
}

// EncodeContributions writes the table into the app contributions file, in canonical form.
func EncodeContributions(t coinvest.ContributionTable) error {
	f, err := os.Create(*contributionsFile)
	if err != nil {
		return fmt.Errorf("error opening contributions file %q for writing: %w", *contributionsFile, err)
	}
	defer f.Close()
	return coinvest.EncodeContributions(f, t)
}

// DecodePrices reads an external price series, CSV or JSONL depending on the file extension.
func DecodePrices(name string) (coinvest.PriceSeries, error) {
	f, err := os.Open(name)
	if err != nil {
		return coinvest.PriceSeries{}, err
	}
	defer f.Close()

	var s coinvest.PriceSeries
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jsonl", ".json":
		s, err = coinvest.ImportPricesJSONL(f)
	default:
		s, err = coinvest.ImportPricesCSV(f)
	}
	if err != nil {
		return coinvest.PriceSeries{}, fmt.Errorf("error reading prices %q: %w", name, err)
	}
	return s, nil
}

// NewDisplay returns the display for 'currency', using the live rate from -fx-url when set.
func NewDisplay(currency string) (renderer.Display, error) {
	fx := coinvest.DefaultFX()
	currency = strings.ToUpper(currency)
	if *fxURL != "" && currency != fx.Base() {
		addr := strings.ReplaceAll(*fxURL, "{currency}", currency)
		rate, err := coinvest.FetchRate(coinvest.DailyClient(), addr, *fxPath)
		if err != nil {
			return renderer.Display{}, err
		}
		log.Printf("1 %s = %s %s", currency, rate, fx.Base())
		fx = fx.With(currency, rate)
	}
	return renderer.NewDisplay(fx, currency)
}

// parseDate parses a date relative to 'today', an empty string is 'today'.
func parseDate(s string, today date.Date) (date.Date, error) {
	if s == "" {
		return today, nil
	}
	return date.ParseFrom(s, today)
}

// printMarkdown prints a markdown report, rendered for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
