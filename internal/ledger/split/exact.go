package split

import "github.com/fkhayef/splitledger/internal/ledger"

// =============================================================================
// EXACT SPLIT
// Each participant owes a caller-specified amount. The declared amounts must
// reconcile with the total within one minor unit.
// =============================================================================

// ExactShare assigns a fixed amount to one participant.
type ExactShare struct {
	UserID int64
	Amount ledger.Money
}

// ExactSpec splits an amount by caller-specified exact shares.
type ExactSpec struct {
	Shares []ExactShare
}

// Method returns the method identifier.
func (s ExactSpec) Method() Method {
	return MethodExact
}

// Validate checks that no share is negative and that the shares sum to the
// total within one minor unit.
func (s ExactSpec) Validate(total ledger.Money) error {
	if len(s.Shares) == 0 {
		return ErrNoParticipants
	}

	var sum ledger.Money
	for _, share := range s.Shares {
		if share.Amount < 0 {
			return ErrNegativeAmount
		}
		sum += share.Amount
	}

	if (sum - total).Abs() > ledger.Tolerance {
		return ErrExactSum
	}
	return nil
}

func (s ExactSpec) calculate(total ledger.Money) []Participant {
	participants := make([]Participant, len(s.Shares))
	for i, share := range s.Shares {
		participants[i] = Participant{
			UserID:          share.UserID,
			ShareAmount:     share.Amount,
			SharePercentage: percentOf(share.Amount, total),
		}
	}
	return participants
}
