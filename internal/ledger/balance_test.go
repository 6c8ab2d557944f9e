package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMembers() []Member {
	return []Member{
		{UserID: 1, DisplayName: "Alice"},
		{UserID: 2, DisplayName: "Bob"},
		{UserID: 3, DisplayName: "Carol"},
	}
}

func balanceByUser(balances []Balance, userID int64) Money {
	for _, b := range balances {
		if b.UserID == userID {
			return b.Amount
		}
	}
	return 0
}

func TestCalculateGroupBalances(t *testing.T) {
	// Alice pays 60.00 split equally three ways; Bob pays 30.00 split
	// between Bob and Carol.
	expenses := []Expense{
		{
			ID: 1, PayerID: 1, Amount: 6000, Currency: "USD",
			Participants: []ParticipantShare{
				{UserID: 1, ShareAmount: 2000},
				{UserID: 2, ShareAmount: 2000},
				{UserID: 3, ShareAmount: 2000},
			},
		},
		{
			ID: 2, PayerID: 2, Amount: 3000, Currency: "USD",
			Participants: []ParticipantShare{
				{UserID: 2, ShareAmount: 1500},
				{UserID: 3, ShareAmount: 1500},
			},
		},
	}

	balances, excluded := CalculateGroupBalances(testMembers(), expenses, nil, "USD")

	require.Len(t, balances, 3)
	assert.Empty(t, excluded)
	assert.Equal(t, Money(4000), balanceByUser(balances, 1))  // paid 60, owes 20
	assert.Equal(t, Money(-500), balanceByUser(balances, 2))  // paid 30, owes 35
	assert.Equal(t, Money(-3500), balanceByUser(balances, 3)) // owes 35
}

func TestCalculateGroupBalancesConservation(t *testing.T) {
	expenses := []Expense{
		{
			ID: 1, PayerID: 1, Amount: 10000, Currency: "USD",
			Participants: []ParticipantShare{
				{UserID: 1, ShareAmount: 3333},
				{UserID: 2, ShareAmount: 3333},
				{UserID: 3, ShareAmount: 3334},
			},
		},
		{
			ID: 2, PayerID: 3, Amount: 7550, Currency: "USD",
			Participants: []ParticipantShare{
				{UserID: 1, ShareAmount: 3775},
				{UserID: 2, ShareAmount: 2265},
				{UserID: 3, ShareAmount: 1510},
			},
		},
	}
	payments := []Payment{
		{ID: 1, PayerID: 2, RecipientID: 1, Amount: 2500, Currency: "USD"},
	}

	balances, _ := CalculateGroupBalances(testMembers(), expenses, payments, "USD")

	var sum Money
	for _, b := range balances {
		sum += b.Amount
	}
	assert.Equal(t, Money(0), sum, "balances must sum to exactly zero")
}

func TestCalculateGroupBalancesPayments(t *testing.T) {
	// A payment moves money from payer to recipient with no expenses at all.
	payments := []Payment{
		{ID: 1, PayerID: 2, RecipientID: 1, Amount: 2500, Currency: "USD"},
	}

	balances, excluded := CalculateGroupBalances(testMembers(), nil, payments, "USD")

	assert.Empty(t, excluded)
	assert.Equal(t, Money(2500), balanceByUser(balances, 1))
	assert.Equal(t, Money(-2500), balanceByUser(balances, 2))
	assert.Equal(t, Money(0), balanceByUser(balances, 3))
}

func TestCalculateGroupBalancesExcludesOtherCurrencies(t *testing.T) {
	expenses := []Expense{
		{
			ID: 1, PayerID: 1, Amount: 6000, Currency: "USD",
			Participants: []ParticipantShare{
				{UserID: 1, ShareAmount: 3000},
				{UserID: 2, ShareAmount: 3000},
			},
		},
		{
			ID: 2, PayerID: 2, Amount: 5000, Currency: "EUR",
			Participants: []ParticipantShare{
				{UserID: 1, ShareAmount: 2500},
				{UserID: 2, ShareAmount: 2500},
			},
		},
	}
	payments := []Payment{
		{ID: 7, PayerID: 2, RecipientID: 1, Amount: 1000, Currency: "GBP"},
	}

	balances, excluded := CalculateGroupBalances(testMembers(), expenses, payments, "USD")

	// Only the USD expense counts.
	assert.Equal(t, Money(3000), balanceByUser(balances, 1))
	assert.Equal(t, Money(-3000), balanceByUser(balances, 2))

	require.Len(t, excluded, 2)
	assert.Equal(t, ExcludedRecord{Kind: RecordKindExpense, ID: 2, Currency: "EUR"}, excluded[0])
	assert.Equal(t, ExcludedRecord{Kind: RecordKindPayment, ID: 7, Currency: "GBP"}, excluded[1])
}

func TestCalculateGroupBalancesUnknownUsersIgnored(t *testing.T) {
	// Records referencing users who are not active members do not create
	// phantom balances.
	expenses := []Expense{
		{
			ID: 1, PayerID: 99, Amount: 1000, Currency: "USD",
			Participants: []ParticipantShare{
				{UserID: 1, ShareAmount: 500},
				{UserID: 98, ShareAmount: 500},
			},
		},
	}

	balances, _ := CalculateGroupBalances(testMembers(), expenses, nil, "USD")

	require.Len(t, balances, 3)
	assert.Equal(t, Money(-500), balanceByUser(balances, 1))
}

func TestCalculateGroupBalancesEmptyGroup(t *testing.T) {
	balances, excluded := CalculateGroupBalances(testMembers(), nil, nil, "USD")

	require.Len(t, balances, 3)
	for _, b := range balances {
		assert.Equal(t, Money(0), b.Amount)
	}
	assert.Empty(t, excluded)

	balances, excluded = CalculateGroupBalances(nil, nil, nil, "USD")
	assert.Empty(t, balances)
	assert.Empty(t, excluded)
}

func TestCalculateGroupBalancesSortedByName(t *testing.T) {
	members := []Member{
		{UserID: 3, DisplayName: "Zoe"},
		{UserID: 1, DisplayName: "Amy"},
		{UserID: 2, DisplayName: "Mia"},
	}

	balances, _ := CalculateGroupBalances(members, nil, nil, "USD")

	require.Len(t, balances, 3)
	assert.Equal(t, "Amy", balances[0].UserName)
	assert.Equal(t, "Mia", balances[1].UserName)
	assert.Equal(t, "Zoe", balances[2].UserName)
}

func TestCalculateGroupBalancesDeterministic(t *testing.T) {
	expenses := []Expense{
		{
			ID: 1, PayerID: 1, Amount: 9999, Currency: "USD",
			Participants: []ParticipantShare{
				{UserID: 1, ShareAmount: 3333},
				{UserID: 2, ShareAmount: 3333},
				{UserID: 3, ShareAmount: 3333},
			},
		},
	}

	first, _ := CalculateGroupBalances(testMembers(), expenses, nil, "USD")
	second, _ := CalculateGroupBalances(testMembers(), expenses, nil, "USD")
	assert.Equal(t, first, second)
}

func TestValidateExpenseSplit(t *testing.T) {
	tests := []struct {
		name   string
		amount Money
		shares []Money
		want   bool
	}{
		{"exact", 10000, []Money{5000, 5000}, true},
		{"one unit under", 10000, []Money{5000, 4999}, true},
		{"one unit over", 10000, []Money{5000, 5001}, true},
		{"two units off", 10000, []Money{5000, 4998}, false},
		{"way off", 10000, []Money{6000, 3000}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Expense{Amount: tt.amount}
			for i, s := range tt.shares {
				e.Participants = append(e.Participants, ParticipantShare{UserID: int64(i + 1), ShareAmount: s})
			}
			assert.Equal(t, tt.want, ValidateExpenseSplit(e))
		})
	}
}
