package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSettlementPlan(t *testing.T) {
	balances := []Balance{
		{UserID: 1, UserName: "Alice", Amount: 4000},
		{UserID: 2, UserName: "Bob", Amount: -2500},
		{UserID: 3, UserName: "Carol", Amount: -1500},
	}

	plan := GenerateSettlementPlan(balances)

	require.Len(t, plan, 2)
	assert.Equal(t, SettlementTransaction{
		PayerID: 2, PayerName: "Bob", RecipientID: 1, RecipientName: "Alice", Amount: 2500,
	}, plan[0])
	assert.Equal(t, SettlementTransaction{
		PayerID: 3, PayerName: "Carol", RecipientID: 1, RecipientName: "Alice", Amount: 1500,
	}, plan[1])
}

func TestGenerateSettlementPlanEmpty(t *testing.T) {
	plan := GenerateSettlementPlan(nil)
	require.NotNil(t, plan)
	assert.Empty(t, plan)

	plan = GenerateSettlementPlan([]Balance{
		{UserID: 1, UserName: "Alice", Amount: 0},
		{UserID: 2, UserName: "Bob", Amount: 0},
	})
	assert.Empty(t, plan)
}

func TestGenerateSettlementPlanIgnoresNearZero(t *testing.T) {
	// Balances within one minor unit of zero are treated as settled.
	plan := GenerateSettlementPlan([]Balance{
		{UserID: 1, UserName: "Alice", Amount: 1},
		{UserID: 2, UserName: "Bob", Amount: -1},
	})
	assert.Empty(t, plan)
}

func TestGenerateSettlementPlanTransactionBound(t *testing.T) {
	balances := []Balance{
		{UserID: 1, UserName: "A", Amount: 5000},
		{UserID: 2, UserName: "B", Amount: 3000},
		{UserID: 3, UserName: "C", Amount: 2000},
		{UserID: 4, UserName: "D", Amount: -4000},
		{UserID: 5, UserName: "E", Amount: -3500},
		{UserID: 6, UserName: "F", Amount: -2500},
	}

	plan := GenerateSettlementPlan(balances)

	assert.LessOrEqual(t, len(plan), len(balances)-1)
}

func TestGenerateSettlementPlanSettlesEverything(t *testing.T) {
	balances := []Balance{
		{UserID: 1, UserName: "A", Amount: 7351},
		{UserID: 2, UserName: "B", Amount: 1049},
		{UserID: 3, UserName: "C", Amount: -2400},
		{UserID: 4, UserName: "D", Amount: -3000},
		{UserID: 5, UserName: "E", Amount: -3000},
	}

	plan := GenerateSettlementPlan(balances)

	// Applying every suggested transaction must restore everyone to zero
	// within the minor-unit tolerance.
	net := make(map[int64]Money)
	for _, b := range balances {
		net[b.UserID] = b.Amount
	}
	for _, tx := range plan {
		assert.Greater(t, tx.Amount, Money(0))
		net[tx.PayerID] += tx.Amount
		net[tx.RecipientID] -= tx.Amount
	}
	for userID, remaining := range net {
		assert.LessOrEqual(t, remaining.Abs(), Tolerance, "user %d not settled", userID)
	}
}

func TestGenerateSettlementPlanSortedByAmount(t *testing.T) {
	balances := []Balance{
		{UserID: 1, UserName: "A", Amount: 1000},
		{UserID: 2, UserName: "B", Amount: 6000},
		{UserID: 3, UserName: "C", Amount: -3000},
		{UserID: 4, UserName: "D", Amount: -4000},
	}

	plan := GenerateSettlementPlan(balances)

	for i := 1; i < len(plan); i++ {
		assert.GreaterOrEqual(t, plan[i-1].Amount, plan[i].Amount)
	}
}

func TestGenerateSettlementPlanDeterministicTies(t *testing.T) {
	// Equal balances resolve to the smallest user ID, so repeated runs over
	// the same snapshot produce identical plans.
	balances := []Balance{
		{UserID: 4, UserName: "Dan", Amount: -1500},
		{UserID: 2, UserName: "Bea", Amount: 1500},
		{UserID: 1, UserName: "Abe", Amount: 1500},
		{UserID: 3, UserName: "Cal", Amount: -1500},
	}

	first := GenerateSettlementPlan(balances)

	require.Len(t, first, 2)
	assert.Equal(t, int64(1), first[0].RecipientID)
	assert.Equal(t, int64(3), first[0].PayerID)

	for i := 0; i < 10; i++ {
		again := GenerateSettlementPlan([]Balance{
			{UserID: 4, UserName: "Dan", Amount: -1500},
			{UserID: 2, UserName: "Bea", Amount: 1500},
			{UserID: 1, UserName: "Abe", Amount: 1500},
			{UserID: 3, UserName: "Cal", Amount: -1500},
		})
		assert.Equal(t, first, again)
	}
}

func TestGenerateSettlementPlanSingleDebtorManyCreditors(t *testing.T) {
	balances := []Balance{
		{UserID: 1, UserName: "A", Amount: 2000},
		{UserID: 2, UserName: "B", Amount: 3000},
		{UserID: 3, UserName: "C", Amount: -5000},
	}

	plan := GenerateSettlementPlan(balances)

	require.Len(t, plan, 2)
	for _, tx := range plan {
		assert.Equal(t, int64(3), tx.PayerID)
	}
	assert.Equal(t, Money(3000), plan[0].Amount)
	assert.Equal(t, Money(2000), plan[1].Amount)
}
