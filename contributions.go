package coinvest

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/etnz/coinvest/date"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownWindow      = errors.New("not an investment window")
	ErrFixedWindow        = errors.New("investment window is fixed")
	ErrDerivedParticipant = errors.New("participant contributions are derived from the plan")
	ErrNegativeAmount     = errors.New("contribution cannot be negative")
)

// ContributionEvent is capital committed by a participant on a given day.
type ContributionEvent struct {
	On          date.Date
	Participant Participant
	Amount      decimal.Decimal
}

// Window is an investment window: a pre-agreed date with the named participants
// contributions and the total inflow the project plan requires on that date.
type Window struct {
	On          date.Date
	Antoine     decimal.Decimal
	NewInvestor decimal.Decimal
	Plan        decimal.Decimal
}

// Named returns the sum of the named participants contributions.
func (w Window) Named() decimal.Decimal { return w.Antoine.Add(w.NewInvestor) }

// Others returns the part of the plan not covered by the named participants, never negative.
func (w Window) Others() decimal.Decimal {
	return decimal.Max(w.Plan.Sub(w.Named()), decimal.Zero)
}

// Contribution returns the contribution of p on this window.
func (w Window) Contribution(p Participant) decimal.Decimal {
	switch p {
	case Antoine:
		return w.Antoine
	case NewInvestor:
		return w.NewInvestor
	case OtherInvestors:
		return w.Others()
	default:
		panic(fmt.Sprintf("unknown participant %d", p))
	}
}

// ValidationWarning flags a window where the named contributions exceed the plan.
// The derived contribution of the other investors is clamped to zero on that window.
type ValidationWarning struct {
	On    date.Date
	Named decimal.Decimal
	Plan  decimal.Decimal
}

// Excess returns by how much the named contributions exceed the plan.
func (v ValidationWarning) Excess() decimal.Decimal { return v.Named.Sub(v.Plan) }

func (v ValidationWarning) String() string {
	return fmt.Sprintf("%s: contributions %s exceed the plan %s by %s, other investors set to 0",
		v.On, v.Named.StringFixed(0), v.Plan.StringFixed(0), v.Excess().StringFixed(0))
}

// ContributionTable is the contribution schedule of the project, one row per investment window.
//
// A ContributionTable is a value: every modification returns a new table and leaves the receiver untouched.
type ContributionTable struct {
	windows      []Window // sorted, unique dates
	editableFrom date.Date
}

// NewContributionTable returns a table with the given windows.
//
// Windows on or after editableFrom can later be revised, the ones before are historical.
// When two windows share the same date the last one wins.
func NewContributionTable(editableFrom date.Date, windows ...Window) ContributionTable {
	t := ContributionTable{editableFrom: editableFrom}
	for _, w := range windows {
		i, found := t.search(w.On)
		if found {
			t.windows[i] = w
			continue
		}
		t.windows = slices.Insert(t.windows, i, w)
	}
	return t
}

func (t ContributionTable) search(on date.Date) (int, bool) {
	return slices.BinarySearchFunc(t.windows, on, func(w Window, d date.Date) int { return w.On.Compare(d) })
}

// EditableFrom returns the first date that can be revised.
func (t ContributionTable) EditableFrom() date.Date { return t.editableFrom }

// Editable reports whether the window on 'on' can be revised.
func (t ContributionTable) Editable(on date.Date) bool { return !on.Before(t.editableFrom) }

// Len returns the number of investment windows.
func (t ContributionTable) Len() int { return len(t.windows) }

// Windows returns a copy of the windows in chronological order.
func (t ContributionTable) Windows() []Window { return slices.Clone(t.windows) }

// Dates returns the investment window dates in chronological order.
func (t ContributionTable) Dates() []date.Date {
	dates := make([]date.Date, len(t.windows))
	for i, w := range t.windows {
		dates[i] = w.On
	}
	return dates
}

// Window returns the window on 'on'.
func (t ContributionTable) Window(on date.Date) (Window, bool) {
	if i, found := t.search(on); found {
		return t.windows[i], true
	}
	return Window{}, false
}

// Contribution returns what p contributes on 'on', zero if 'on' is not a window.
func (t ContributionTable) Contribution(p Participant, on date.Date) decimal.Decimal {
	w, ok := t.Window(on)
	if !ok {
		return decimal.Zero
	}
	return w.Contribution(p)
}

// Plan returns the plan total on 'on', zero if 'on' is not a window.
func (t ContributionTable) Plan(on date.Date) decimal.Decimal {
	w, _ := t.Window(on)
	return w.Plan
}

// Totals returns the total contribution of each participant over all windows.
func (t ContributionTable) Totals() Amounts {
	var a Amounts
	for _, w := range t.windows {
		for _, p := range Participants {
			a[p] = a[p].Add(w.Contribution(p))
		}
	}
	return a
}

// Events returns the non zero contributions in chronological order.
func (t ContributionTable) Events() iter.Seq[ContributionEvent] {
	return func(yield func(ContributionEvent) bool) {
		for _, w := range t.windows {
			for _, p := range Participants {
				amount := w.Contribution(p)
				if amount.IsZero() {
					continue
				}
				if !yield(ContributionEvent{On: w.On, Participant: p, Amount: amount}) {
					return
				}
			}
		}
	}
}

// Warnings returns a warning for every window where the named contributions exceed the plan.
func (t ContributionTable) Warnings() []ValidationWarning {
	var warnings []ValidationWarning
	for _, w := range t.windows {
		if w.Named().GreaterThan(w.Plan) {
			warnings = append(warnings, ValidationWarning{On: w.On, Named: w.Named(), Plan: w.Plan})
		}
	}
	return warnings
}

// OverPlanDates returns the dates where the named contributions exceed the plan.
func (t ContributionTable) OverPlanDates() []date.Date {
	var dates []date.Date
	for _, w := range t.Warnings() {
		dates = append(dates, w.On)
	}
	return dates
}

// Revise returns a copy of the table where p contributes 'amount' on the window 'on'.
//
// Historical windows, the ones before EditableFrom, cannot be revised. Neither can the
// other investors, whose contributions derive from the plan.
func (t ContributionTable) Revise(on date.Date, p Participant, amount decimal.Decimal) (ContributionTable, error) {
	i, found := t.search(on)
	if !found {
		return t, fmt.Errorf("cannot revise %s on %s: %w", p, on, ErrUnknownWindow)
	}
	if !t.Editable(on) {
		return t, fmt.Errorf("cannot revise %s on %s before %s: %w", p, on, t.editableFrom, ErrFixedWindow)
	}
	if amount.IsNegative() {
		return t, fmt.Errorf("cannot revise %s on %s to %s: %w", p, on, amount, ErrNegativeAmount)
	}

	revised := ContributionTable{windows: slices.Clone(t.windows), editableFrom: t.editableFrom}
	w := &revised.windows[i]
	switch p {
	case Antoine:
		w.Antoine = amount
	case NewInvestor:
		w.NewInvestor = amount
	case OtherInvestors:
		return t, fmt.Errorf("cannot revise %s on %s: %w", p, on, ErrDerivedParticipant)
	default:
		panic(fmt.Sprintf("unknown participant %d", p))
	}
	return revised, nil
}

// WithDefaultPlan returns a copy of the table where every window plan equals its named contributions,
// so that no other investor is needed.
func (t ContributionTable) WithDefaultPlan() ContributionTable {
	revised := ContributionTable{windows: slices.Clone(t.windows), editableFrom: t.editableFrom}
	for i := range revised.windows {
		revised.windows[i].Plan = revised.windows[i].Named()
	}
	return revised
}
