package coinvest

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Participant identifies one of the three roles of the co-investment.
type Participant int

const (
	// Antoine is the controlling party: he receives the residual and never a guarantee.
	Antoine Participant = iota
	// NewInvestor is the distinguished external investor.
	NewInvestor
	// OtherInvestors aggregates every other investor. Its contributions are never entered
	// directly, they are whatever the plan still requires once the named participants paid.
	OtherInvestors
)

const participantCount = 3

// Participants lists all participants in their canonical order.
var Participants = [participantCount]Participant{Antoine, NewInvestor, OtherInvestors}

func (p Participant) String() string {
	switch p {
	case Antoine:
		return "Antoine"
	case NewInvestor:
		return "New investor"
	case OtherInvestors:
		return "Other investors"
	default:
		panic(fmt.Sprintf("unknown participant %d", p))
	}
}

// key returns the identifier used in files and on the command line.
func (p Participant) key() string {
	switch p {
	case Antoine:
		return "antoine"
	case NewInvestor:
		return "newInvestor"
	case OtherInvestors:
		return "otherInvestors"
	default:
		panic(fmt.Sprintf("unknown participant %d", p))
	}
}

// Controlling reports whether p absorbs the residual.
func (p Participant) Controlling() bool { return p == Antoine }

// Named reports whether p's contributions are entered explicitly.
func (p Participant) Named() bool { return p != OtherInvestors }

// ParseParticipant parses either the display name or the identifier of a participant, ignoring case.
func ParseParticipant(s string) (Participant, error) {
	s = strings.TrimSpace(s)
	for _, p := range Participants {
		if strings.EqualFold(s, p.key()) || strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	switch strings.ToLower(s) {
	case "new", "investor":
		return NewInvestor, nil
	case "other", "others":
		return OtherInvestors, nil
	}
	return Antoine, fmt.Errorf("unknown participant %q", s)
}

// Amounts holds one value per participant.
//
// The zero value is all zeros.
type Amounts [participantCount]decimal.Decimal

// Get returns the amount of participant p.
func (a Amounts) Get(p Participant) decimal.Decimal { return a[p] }

// Sum returns the total over all participants.
func (a Amounts) Sum() decimal.Decimal {
	return a[Antoine].Add(a[NewInvestor]).Add(a[OtherInvestors])
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}
