package coinvest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/etnz/coinvest/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains code to persist a project in a way that is still human-readable and git-friendly:
//   - the project file is a single json object with the purchase, the target and the terms.
//   - the contributions file is a JSONL file, one investment window per line, in chronological order.

// jproject is the project file content.
type jproject struct {
	Currency     string    `json:"currency,omitempty"`
	Location     string    `json:"location,omitempty"`
	Acquisition  Anchor    `json:"acquisition"`
	Target       Anchor    `json:"target"`
	EditableFrom date.Date `json:"editableFrom"`
	Terms        *Terms    `json:"terms,omitempty"`
}

// DecodeProject reads a project file. Contributions are read separately with DecodeContributions.
//
// Acquisition and target dates are required. Missing terms, or missing fields in the terms, default to DefaultTerms.
// A missing editableFrom defaults to the default project's one, a missing currency to BaseCurrency and a missing location to Dubai.
func DecodeProject(r io.Reader) (*Project, error) {
	defaults := DefaultProject()
	jp := jproject{
		EditableFrom: defaults.Contributions.EditableFrom(),
		Terms:        &defaults.Terms,
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jp); err != nil {
		return nil, fmt.Errorf("cannot decode project: %w", err)
	}
	if jp.Acquisition.On.IsZero() {
		return nil, fmt.Errorf("cannot decode project: missing acquisition date")
	}
	if jp.Target.On.IsZero() {
		return nil, fmt.Errorf("cannot decode project: missing target date")
	}
	if jp.Terms == nil {
		return nil, fmt.Errorf("cannot decode project: terms cannot be null")
	}

	p := &Project{
		Currency:      jp.Currency,
		Location:      Dubai,
		Acquisition:   jp.Acquisition,
		Target:        jp.Target,
		Terms:         *jp.Terms,
		Contributions: NewContributionTable(jp.EditableFrom),
	}
	if p.Currency == "" {
		p.Currency = BaseCurrency
	}
	if jp.Location != "" && jp.Location != Dubai.String() {
		loc, err := time.LoadLocation(jp.Location)
		if err != nil {
			return nil, fmt.Errorf("cannot decode project location: %w", err)
		}
		p.Location = loc
	}
	return p, nil
}

// EncodeProject writes the project file. Contributions are written separately with EncodeContributions.
func EncodeProject(w io.Writer, p *Project) error {
	jp := jproject{
		Currency:     p.Currency,
		Acquisition:  p.Acquisition,
		Target:       p.Target,
		EditableFrom: p.Contributions.EditableFrom(),
		Terms:        &p.Terms,
	}
	if p.Location != nil {
		jp.Location = p.Location.String()
	}
	data, err := json.MarshalIndent(jp, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode project: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write project: %w", err)
	}
	return nil
}

// jwindow is a contributions file line.
type jwindow struct {
	Date        date.Date       `json:"date"`
	Plan        decimal.Decimal `json:"plan"`
	Antoine     decimal.Decimal `json:"antoine"`
	NewInvestor decimal.Decimal `json:"newInvestor"`
}

// DecodeContributions reads a contributions file and returns the table, windows on or after editableFrom being editable.
func DecodeContributions(r io.Reader, editableFrom date.Date) (ContributionTable, error) {
	var windows []Window
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		if len(strings.TrimSpace(scanner.Text())) == 0 {
			continue
		}
		var jw jwindow
		dec := json.NewDecoder(strings.NewReader(scanner.Text()))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&jw); err != nil {
			return ContributionTable{}, fmt.Errorf("format error on line %d %q: %w", line, scanner.Text(), err)
		}
		if jw.Date.IsZero() {
			return ContributionTable{}, fmt.Errorf("format error on line %d %q: missing date", line, scanner.Text())
		}
		for _, v := range []decimal.Decimal{jw.Plan, jw.Antoine, jw.NewInvestor} {
			if v.IsNegative() {
				return ContributionTable{}, fmt.Errorf("format error on line %d %q: %w", line, scanner.Text(), ErrNegativeAmount)
			}
		}
		windows = append(windows, Window{On: jw.Date, Antoine: jw.Antoine, NewInvestor: jw.NewInvestor, Plan: jw.Plan})
	}
	if err := scanner.Err(); err != nil {
		return ContributionTable{}, fmt.Errorf("cannot read contributions: %w", err)
	}
	return NewContributionTable(editableFrom, windows...), nil
}

// EncodeContributions writes the table in canonical form: chronological order,
// fields always in the same order, zero amounts omitted.
func EncodeContributions(w io.Writer, t ContributionTable) error {
	for _, win := range t.windows {
		var jw jsonObjectWriter
		jw.Append("date", win.On)
		jw.Optional("plan", win.Plan)
		jw.Optional(Antoine.key(), win.Antoine)
		jw.Optional(NewInvestor.key(), win.NewInvestor)
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode window %s: %w", win.On, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write contributions: %w", err)
		}
	}
	return nil
}
