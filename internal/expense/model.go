package expense

import (
	"time"

	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/internal/ledger/split"
)

// Expense represents a shared expense in the system. Amount is stored in the
// currency's minor units.
type Expense struct {
	ID           int64           `json:"id"`
	GroupID      int64           `json:"group_id"`
	PayerID      int64           `json:"payer_id"`
	Description  string          `json:"description"`
	Amount       ledger.Money    `json:"amount"`
	CurrencyCode ledger.Currency `json:"currency_code"`
	SplitMethod  split.Method    `json:"split_method"`
	CreatedAt    time.Time       `json:"created_at"`

	// Populated via JOIN
	PayerUsername string `json:"payer_username,omitempty"`
}

// Participant represents one member's share of an expense. SharePercentage is
// kept for display even when the split was exact or shares-based; ShareCount
// is nil except for the shares method.
type Participant struct {
	ID              int64        `json:"id"`
	ExpenseID       int64        `json:"expense_id"`
	UserID          int64        `json:"user_id"`
	ShareAmount     ledger.Money `json:"share_amount"`
	SharePercentage *float64     `json:"share_percentage,omitempty"`
	ShareCount      *int         `json:"share_count,omitempty"`

	// Populated via JOIN
	Username string `json:"username,omitempty"`
}

// ExpenseWithParticipants combines an expense with its participant shares
type ExpenseWithParticipants struct {
	Expense      *Expense
	Participants []*Participant
}

// ToLedger converts a persisted expense into the read-only snapshot shape the
// balance engine consumes.
func (e *ExpenseWithParticipants) ToLedger() ledger.Expense {
	shares := make([]ledger.ParticipantShare, len(e.Participants))
	for i, p := range e.Participants {
		shares[i] = ledger.ParticipantShare{
			UserID:      p.UserID,
			ShareAmount: p.ShareAmount,
		}
	}
	return ledger.Expense{
		ID:           e.Expense.ID,
		PayerID:      e.Expense.PayerID,
		Amount:       e.Expense.Amount,
		Currency:     e.Expense.CurrencyCode,
		Participants: shares,
	}
}
