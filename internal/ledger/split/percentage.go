package split

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// =============================================================================
// PERCENTAGE SPLIT
// Each participant owes amount * percentage / 100. Percentages must already
// sum to 100; this spec never renormalizes a bad sum.
// =============================================================================

// PercentageShare assigns a percentage of the total to one participant.
type PercentageShare struct {
	UserID  int64
	Percent float64
}

// PercentageSpec splits an amount by per-participant percentages.
type PercentageSpec struct {
	Shares []PercentageShare
}

// Method returns the method identifier.
func (s PercentageSpec) Method() Method {
	return MethodPercentage
}

// Validate checks that every percentage is within [0, 100] and that the sum
// is 100 within a 0.01 tolerance.
func (s PercentageSpec) Validate(total ledger.Money) error {
	if len(s.Shares) == 0 {
		return ErrNoParticipants
	}

	var sum float64
	for _, share := range s.Shares {
		if math.IsNaN(share.Percent) || share.Percent < 0 || share.Percent > 100 {
			return ErrPercentageOutOfRange
		}
		sum += share.Percent
	}

	if math.Abs(sum-100) > 0.01 {
		return ErrPercentageSum
	}
	return nil
}

func (s PercentageSpec) calculate(total ledger.Money) []Participant {
	participants := make([]Participant, len(s.Shares))
	var distributed ledger.Money

	for i, share := range s.Shares {
		amount := ledger.Money(decimal.NewFromInt(int64(total)).
			Mul(decimal.NewFromFloat(share.Percent)).
			DivRound(decimal.NewFromInt(100), 0).
			IntPart())
		if i == len(s.Shares)-1 {
			// Absorb the rounding remainder so the shares reconcile exactly.
			amount = total - distributed
		}
		distributed += amount
		participants[i] = Participant{
			UserID:          share.UserID,
			ShareAmount:     amount,
			SharePercentage: share.Percent,
		}
	}

	return participants
}
