package split

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// =============================================================================
// EQUAL SPLIT
// Divides the amount into n equal parts. Division rarely terminates exactly
// in minor units, so everyone but the last participant gets the rounded
// quotient and the last participant gets the remainder.
// =============================================================================

// EqualSpec splits an amount evenly among the listed participants.
type EqualSpec struct {
	UserIDs []int64
}

// Method returns the method identifier.
func (s EqualSpec) Method() Method {
	return MethodEqual
}

// Validate checks that the participant set is non-empty. An equal split over
// any non-empty set is always valid.
func (s EqualSpec) Validate(total ledger.Money) error {
	if len(s.UserIDs) == 0 {
		return ErrNoParticipants
	}
	return nil
}

func (s EqualSpec) calculate(total ledger.Money) []Participant {
	n := int64(len(s.UserIDs))

	// Half-up rounding of total/n in minor units.
	base := ledger.Money(decimal.NewFromInt(int64(total)).
		DivRound(decimal.NewFromInt(n), 0).
		IntPart())

	participants := make([]Participant, len(s.UserIDs))
	var distributed ledger.Money

	for i, userID := range s.UserIDs {
		share := base
		if i == len(s.UserIDs)-1 {
			share = total - distributed
		}
		distributed += share
		participants[i] = Participant{
			UserID:          userID,
			ShareAmount:     share,
			SharePercentage: percentOf(share, total),
		}
	}

	return participants
}
