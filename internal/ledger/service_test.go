package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSources struct {
	group    *GroupInfo
	expenses []Expense
	payments []Payment
	members  []Member
	err      error
}

func (s *stubSources) GetGroupInfo(ctx context.Context, groupID int64) (*GroupInfo, error) {
	return s.group, s.err
}

func (s *stubSources) ListActiveExpenses(ctx context.Context, groupID int64) ([]Expense, error) {
	return s.expenses, s.err
}

func (s *stubSources) ListActivePayments(ctx context.Context, groupID int64) ([]Payment, error) {
	return s.payments, s.err
}

func (s *stubSources) ListActiveMembers(ctx context.Context, groupID int64) ([]Member, error) {
	return s.members, s.err
}

func newStubService(stub *stubSources) *Service {
	return NewService(stub, stub, stub, stub)
}

func TestServiceGroupBalances(t *testing.T) {
	stub := &stubSources{
		group: &GroupInfo{ID: 10, Name: "Trip", Currency: "USD"},
		members: []Member{
			{UserID: 1, DisplayName: "Alice"},
			{UserID: 2, DisplayName: "Bob"},
		},
		expenses: []Expense{
			{
				ID: 1, PayerID: 1, Amount: 5000, Currency: "USD",
				Participants: []ParticipantShare{
					{UserID: 1, ShareAmount: 2500},
					{UserID: 2, ShareAmount: 2500},
				},
			},
		},
	}

	sheet, err := newStubService(stub).GroupBalances(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, GroupInfo{ID: 10, Name: "Trip", Currency: "USD"}, sheet.Group)
	require.Len(t, sheet.Balances, 2)
	assert.Equal(t, Money(2500), sheet.Balances[0].Amount)  // Alice
	assert.Equal(t, Money(-2500), sheet.Balances[1].Amount) // Bob
	assert.Empty(t, sheet.Excluded)
}

func TestServiceGroupBalancesGroupNotFound(t *testing.T) {
	_, err := newStubService(&stubSources{}).GroupBalances(context.Background(), 42)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestServiceGroupBalancesSourceError(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := newStubService(&stubSources{err: boom}).GroupBalances(context.Background(), 10)
	assert.ErrorIs(t, err, boom)
}

func TestServiceSettleUp(t *testing.T) {
	stub := &stubSources{
		group: &GroupInfo{ID: 10, Name: "Trip", Currency: "USD"},
		members: []Member{
			{UserID: 1, DisplayName: "Alice"},
			{UserID: 2, DisplayName: "Bob"},
			{UserID: 3, DisplayName: "Carol"},
		},
		expenses: []Expense{
			{
				ID: 1, PayerID: 1, Amount: 4000, Currency: "USD",
				Participants: []ParticipantShare{
					{UserID: 2, ShareAmount: 2500},
					{UserID: 3, ShareAmount: 1500},
				},
			},
		},
	}

	plan, err := newStubService(stub).SettleUp(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, plan.Transactions, 2)
	assert.Equal(t, int64(2), plan.Transactions[0].PayerID)
	assert.Equal(t, Money(2500), plan.Transactions[0].Amount)
	assert.Equal(t, int64(3), plan.Transactions[1].PayerID)
	assert.Equal(t, Money(1500), plan.Transactions[1].Amount)
}

func TestServiceSettleUpNothingOwed(t *testing.T) {
	stub := &stubSources{
		group:   &GroupInfo{ID: 10, Name: "Trip", Currency: "USD"},
		members: []Member{{UserID: 1, DisplayName: "Alice"}},
	}

	plan, err := newStubService(stub).SettleUp(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, plan.Transactions)
	assert.Empty(t, plan.Transactions)
}
