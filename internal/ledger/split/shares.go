package split

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// =============================================================================
// SHARES SPLIT
// Each participant owes amount * (count / totalCount), weighted by integer
// share counts (e.g. 2 shares for a couple, 1 for a single).
// =============================================================================

// CountShare assigns an integer weight to one participant.
type CountShare struct {
	UserID int64
	Count  int
}

// SharesSpec splits an amount proportionally to integer share counts.
type SharesSpec struct {
	Shares []CountShare
}

// Method returns the method identifier.
func (s SharesSpec) Method() Method {
	return MethodShares
}

// Validate checks that every share count is a positive integer.
func (s SharesSpec) Validate(total ledger.Money) error {
	if len(s.Shares) == 0 {
		return ErrNoParticipants
	}

	totalCount := 0
	for _, share := range s.Shares {
		if share.Count <= 0 {
			return ErrInvalidShareCount
		}
		totalCount += share.Count
	}

	if totalCount <= 0 {
		return ErrInvalidShareTotal
	}
	return nil
}

func (s SharesSpec) calculate(total ledger.Money) []Participant {
	totalCount := 0
	for _, share := range s.Shares {
		totalCount += share.Count
	}

	participants := make([]Participant, len(s.Shares))
	var distributed ledger.Money

	for i, share := range s.Shares {
		amount := ledger.Money(decimal.NewFromInt(int64(total)).
			Mul(decimal.NewFromInt(int64(share.Count))).
			DivRound(decimal.NewFromInt(int64(totalCount)), 0).
			IntPart())
		if i == len(s.Shares)-1 {
			amount = total - distributed
		}
		distributed += amount
		participants[i] = Participant{
			UserID:          share.UserID,
			ShareAmount:     amount,
			SharePercentage: percentOf(amount, total),
			ShareCount:      share.Count,
		}
	}

	return participants
}
