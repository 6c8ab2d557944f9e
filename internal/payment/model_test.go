package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkhayef/splitledger/internal/ledger"
)

func TestPaymentToLedger(t *testing.T) {
	note := "dinner settle-up"
	p := &Payment{
		ID:           7,
		GroupID:      3,
		PayerID:      2,
		RecipientID:  1,
		Amount:       2500,
		CurrencyCode: "USD",
		Note:         &note,
	}

	assert.Equal(t, ledger.Payment{
		ID:          7,
		PayerID:     2,
		RecipientID: 1,
		Amount:      2500,
		Currency:    "USD",
	}, p.ToLedger())
}
