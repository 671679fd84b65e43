package date

import (
	"fmt"
	"iter"
)

// Range represents a range of dates, both boundaries included.
type Range struct{ From, To Date }

// NewRange return a well known period
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// IsEmpty reports whether the range contains no day at all.
func (r Range) IsEmpty() bool { return r.To.Before(r.From) }

// Len returns the number of days in the range.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return Days(r.From, r.To) + 1
}

// Days returns an iterator over every day in the range, in chronological order.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Ends returns an iterator over the last day of each period in the range.
//
// The last period is truncated to the end of the range.
func (r Range) Ends(period Period) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); {
			end := d.EndOf(period)
			if end.After(r.To) {
				end = r.To
			}
			if !yield(end) {
				return
			}
			d = end.Add(1)
		}
	}
}

func (r Range) String() string { return fmt.Sprintf("%s_%s", r.From, r.To) }
