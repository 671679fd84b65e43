package renderer

import (
	"fmt"

	"github.com/etnz/coinvest"
)

// Scenario is a struct to represent a project evaluation for rendering.
type Scenario struct {
	Today       string     `json:"today"`
	On          string     `json:"on"`
	Currency    string     `json:"currency"`
	GainPerUnit string     `json:"gainPerUnit"`
	Warnings    []string   `json:"warnings,omitempty"`
	SaleToday   Allocation `json:"saleToday"`
	Sale        Allocation `json:"sale"`
	Exit        Allocation `json:"exit"`
}

// Allocation holds a sale or an exit, ready to be printed.
type Allocation struct {
	Title             string          `json:"title"`
	Price             string          `json:"price"`
	TotalAppreciation string          `json:"totalAppreciation"`
	Rate              string          `json:"rate,omitempty"` // exit only
	Total             string          `json:"total"`
	Rows              []AllocationRow `json:"rows"`
}

// AllocationRow holds a single participant line.
type AllocationRow struct {
	Participant  string `json:"participant"`
	Appreciation string `json:"appreciation,omitempty"`
	Guarantee    string `json:"guarantee,omitempty"`
	Final        string `json:"final"`
}

// NewScenario converts an evaluation into its printable form.
func NewScenario(s *coinvest.Scenario, d Display) *Scenario {
	r := &Scenario{
		Today:       s.Today.String(),
		On:          s.On.String(),
		Currency:    d.Currency(),
		GainPerUnit: s.GainPerUnit.StringFixed(6),
		SaleToday:   *NewSale(fmt.Sprintf("Sale today (%s)", s.Today), s.SaleToday, d),
		Sale:        *NewSale(fmt.Sprintf("Sale on %s", s.On), s.Sale, d),
		Exit:        *NewExit(fmt.Sprintf("Exit on %s", s.On), s.Exit, d),
	}
	for _, w := range s.Warnings {
		r.Warnings = append(r.Warnings, warning(w, d))
	}
	return r
}

// NewSale converts a sale into its printable form.
func NewSale(title string, sale coinvest.Sale, d Display) *Allocation {
	a := &Allocation{
		Title:             title,
		Price:             d.Amount(sale.Price),
		TotalAppreciation: d.Amount(sale.TotalAppreciation),
		Total:             d.Amount(sale.Finals().Sum()),
	}
	for _, p := range coinvest.Participants {
		g := sale.Gain(p)
		row := AllocationRow{
			Participant:  p.String(),
			Appreciation: d.Amount(g.Appreciation),
			Guarantee:    "-",
			Final:        d.Amount(g.Final),
		}
		if !p.Controlling() {
			row.Guarantee = d.Amount(g.Guarantee)
		}
		a.Rows = append(a.Rows, row)
	}
	return a
}

// NewExit converts an exit into its printable form.
func NewExit(title string, exit coinvest.Exit, d Display) *Allocation {
	a := &Allocation{
		Title:             title,
		Price:             d.Amount(exit.Price),
		TotalAppreciation: d.Amount(exit.TotalAppreciation),
		Rate:              coinvest.PercentOf(exit.Rate).Short(),
		Total:             d.Amount(exit.Amounts.Sum()),
	}
	for _, p := range coinvest.Participants {
		a.Rows = append(a.Rows, AllocationRow{Participant: p.String(), Final: d.Amount(exit.Amounts.Get(p))})
	}
	return a
}

// warning formats a validation warning in the display currency.
func warning(w coinvest.ValidationWarning, d Display) string {
	return fmt.Sprintf("%s: %s named for a plan of %s (%s over)", w.On, d.Amount(w.Named), d.Amount(w.Plan), d.Amount(w.Excess()))
}

// ScenarioMarkdown renders a project evaluation in the display currency.
func ScenarioMarkdown(s *coinvest.Scenario, d Display) string {
	return RenderScenario(NewScenario(s, d))
}
