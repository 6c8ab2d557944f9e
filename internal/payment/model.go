package payment

import (
	"time"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// Payment represents a direct payer→recipient payment inside a group,
// typically recorded after someone follows a settlement suggestion. Amount is
// stored in the currency's minor units.
type Payment struct {
	ID           int64           `json:"id"`
	GroupID      int64           `json:"group_id"`
	PayerID      int64           `json:"payer_id"`
	RecipientID  int64           `json:"recipient_id"`
	Amount       ledger.Money    `json:"amount"`
	CurrencyCode ledger.Currency `json:"currency_code"`
	Note         *string         `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`

	// Populated via JOIN
	PayerUsername     string `json:"payer_username,omitempty"`
	RecipientUsername string `json:"recipient_username,omitempty"`
}

// ToLedger converts a persisted payment into the read-only snapshot shape the
// balance engine consumes.
func (p *Payment) ToLedger() ledger.Payment {
	return ledger.Payment{
		ID:          p.ID,
		PayerID:     p.PayerID,
		RecipientID: p.RecipientID,
		Amount:      p.Amount,
		Currency:    p.CurrencyCode,
	}
}
