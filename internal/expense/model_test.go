package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkhayef/splitledger/internal/ledger"
)

func TestExpenseToLedger(t *testing.T) {
	e := &ExpenseWithParticipants{
		Expense: &Expense{
			ID:           4,
			GroupID:      3,
			PayerID:      1,
			Amount:       7550,
			CurrencyCode: "USD",
		},
		Participants: []*Participant{
			{UserID: 1, ShareAmount: 3775},
			{UserID: 2, ShareAmount: 2265},
			{UserID: 3, ShareAmount: 1510},
		},
	}

	got := e.ToLedger()

	assert.Equal(t, ledger.Expense{
		ID:       4,
		PayerID:  1,
		Amount:   7550,
		Currency: "USD",
		Participants: []ledger.ParticipantShare{
			{UserID: 1, ShareAmount: 3775},
			{UserID: 2, ShareAmount: 2265},
			{UserID: 3, ShareAmount: 1510},
		},
	}, got)
	assert.True(t, ledger.ValidateExpenseSplit(got))
}
