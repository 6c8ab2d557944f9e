package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// Method identifies how an expense is divided among its participants.
type Method string

const (
	MethodEqual      Method = "EQUAL"
	MethodPercentage Method = "PERCENTAGE"
	MethodExact      Method = "EXACT"
	MethodShares     Method = "SHARES"
)

// Participant is the materialized share of one expense participant.
// SharePercentage is always populated for display, even for exact and
// shares-based splits. ShareCount is zero except for the shares method.
type Participant struct {
	UserID          int64        `json:"user_id"`
	ShareAmount     ledger.Money `json:"share_amount"`
	SharePercentage float64      `json:"share_percentage"`
	ShareCount      int          `json:"share_count,omitempty"`
}

// Spec is the split configuration for exactly one method. Each method carries
// only the fields it needs; Calculate dispatches on the concrete type.
type Spec interface {
	// Method returns the method identifier for this configuration.
	Method() Method

	// Validate checks the configuration against the total amount.
	Validate(total ledger.Money) error

	calculate(total ledger.Money) []Participant
}

// Input is a loosely-typed participant entry as it arrives from an API
// request. ParseSpec resolves it into the right Spec; only the fields
// relevant to the chosen method are consulted.
type Input struct {
	UserID     int64         `json:"user_id"`
	Percentage *float64      `json:"percentage,omitempty"`
	Amount     *ledger.Money `json:"amount,omitempty"`
	Shares     *int          `json:"shares,omitempty"`
}

var (
	ErrNoParticipants       = errors.New("at least one participant is required")
	ErrNegativeAmount       = errors.New("amount cannot be negative")
	ErrPercentageSum        = errors.New("percentages must sum to 100")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
	ErrExactSum             = errors.New("exact amounts must sum to the total amount")
	ErrInvalidShareCount    = errors.New("share counts must be positive integers")
	ErrInvalidShareTotal    = errors.New("total share count must be positive")
	ErrMissingPercentage    = errors.New("percentage value required for all participants")
	ErrMissingExactAmount   = errors.New("exact amount required for all participants")
	ErrMissingShareCount    = errors.New("share count required for all participants")
	ErrDuplicateParticipant = errors.New("duplicate participant in split")
)

// ParseSpec builds the Spec for the requested method from loose inputs,
// checking that every participant carries the field the method needs.
func ParseSpec(method Method, inputs []Input) (Spec, error) {
	if len(inputs) == 0 {
		return nil, ErrNoParticipants
	}

	seen := make(map[int64]bool, len(inputs))
	for _, in := range inputs {
		if seen[in.UserID] {
			return nil, ErrDuplicateParticipant
		}
		seen[in.UserID] = true
	}

	switch method {
	case MethodEqual:
		spec := EqualSpec{UserIDs: make([]int64, len(inputs))}
		for i, in := range inputs {
			spec.UserIDs[i] = in.UserID
		}
		return spec, nil

	case MethodPercentage:
		spec := PercentageSpec{Shares: make([]PercentageShare, len(inputs))}
		for i, in := range inputs {
			if in.Percentage == nil {
				return nil, ErrMissingPercentage
			}
			spec.Shares[i] = PercentageShare{UserID: in.UserID, Percent: *in.Percentage}
		}
		return spec, nil

	case MethodExact:
		spec := ExactSpec{Shares: make([]ExactShare, len(inputs))}
		for i, in := range inputs {
			if in.Amount == nil {
				return nil, ErrMissingExactAmount
			}
			spec.Shares[i] = ExactShare{UserID: in.UserID, Amount: *in.Amount}
		}
		return spec, nil

	case MethodShares:
		spec := SharesSpec{Shares: make([]CountShare, len(inputs))}
		for i, in := range inputs {
			if in.Shares == nil {
				return nil, ErrMissingShareCount
			}
			spec.Shares[i] = CountShare{UserID: in.UserID, Count: *in.Shares}
		}
		return spec, nil

	default:
		return nil, fmt.Errorf("unknown split method: %s", method)
	}
}

// Calculate validates the configuration and materializes per-participant
// shares. The shares always sum to total exactly: any rounding remainder is
// absorbed by the last participant in input order.
func Calculate(total ledger.Money, spec Spec) ([]Participant, error) {
	if total < 0 {
		return nil, ErrNegativeAmount
	}
	if err := spec.Validate(total); err != nil {
		return nil, err
	}
	return spec.calculate(total), nil
}

// percentOf returns share/total as a display percentage rounded to two
// decimals. A zero total yields zero rather than dividing by it.
func percentOf(share, total ledger.Money) float64 {
	if total == 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(share)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(total)), 2)
	f, _ := pct.Float64()
	return f
}
