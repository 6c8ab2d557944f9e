package ledger

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Common errors
var (
	ErrGroupNotFound = errors.New("group not found")
)

// GroupInfo is the slice of a group the ledger needs: identity and the
// currency balances are computed in.
type GroupInfo struct {
	ID       int64
	Name     string
	Currency Currency
}

// GroupSource resolves a group. A nil result means the group does not exist.
type GroupSource interface {
	GetGroupInfo(ctx context.Context, groupID int64) (*GroupInfo, error)
}

// ExpenseSource lists a group's active expenses with participants attached.
type ExpenseSource interface {
	ListActiveExpenses(ctx context.Context, groupID int64) ([]Expense, error)
}

// PaymentSource lists a group's active payments.
type PaymentSource interface {
	ListActivePayments(ctx context.Context, groupID int64) ([]Payment, error)
}

// MemberSource lists a group's active members.
type MemberSource interface {
	ListActiveMembers(ctx context.Context, groupID int64) ([]Member, error)
}

// BalanceSheet is the result of one balance computation over a snapshot.
type BalanceSheet struct {
	Group    GroupInfo
	Balances []Balance
	Excluded []ExcludedRecord
}

// SettlementPlan pairs a balance sheet with the suggested transactions that
// would settle it.
type SettlementPlan struct {
	Group        GroupInfo
	Transactions []SettlementTransaction
	Excluded     []ExcludedRecord
}

// Service fetches a consistent snapshot of a group's records and runs the
// pure balance and settlement computations over it. The computations
// themselves never touch storage; consistency of the snapshot is this
// service's (and ultimately the caller's) concern.
type Service struct {
	groups   GroupSource
	expenses ExpenseSource
	payments PaymentSource
	members  MemberSource
}

// NewService creates a new ledger service with its snapshot sources injected.
func NewService(groups GroupSource, expenses ExpenseSource, payments PaymentSource, members MemberSource) *Service {
	return &Service{
		groups:   groups,
		expenses: expenses,
		payments: payments,
		members:  members,
	}
}

// GroupBalances computes the net balance of every member of the group.
func (s *Service) GroupBalances(ctx context.Context, groupID int64) (*BalanceSheet, error) {
	group, expenses, payments, members, err := s.snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances, excluded := CalculateGroupBalances(members, expenses, payments, group.Currency)

	return &BalanceSheet{
		Group:    *group,
		Balances: balances,
		Excluded: excluded,
	}, nil
}

// SettleUp computes the group's balances and reduces them to a suggested
// settlement plan.
func (s *Service) SettleUp(ctx context.Context, groupID int64) (*SettlementPlan, error) {
	sheet, err := s.GroupBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &SettlementPlan{
		Group:        sheet.Group,
		Transactions: GenerateSettlementPlan(sheet.Balances),
		Excluded:     sheet.Excluded,
	}, nil
}

// snapshot resolves the group and fetches its expenses, payments, and members
// concurrently. A write landing between these reads produces a stale but
// internally consistent result; callers needing stronger guarantees re-fetch
// and recompute.
func (s *Service) snapshot(ctx context.Context, groupID int64) (*GroupInfo, []Expense, []Payment, []Member, error) {
	group, err := s.groups.GetGroupInfo(ctx, groupID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if group == nil {
		return nil, nil, nil, nil, ErrGroupNotFound
	}

	var (
		expenses []Expense
		payments []Payment
		members  []Member
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenses.ListActiveExpenses(gctx, groupID)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.payments.ListActivePayments(gctx, groupID)
		return err
	})
	g.Go(func() error {
		var err error
		members, err = s.members.ListActiveMembers(gctx, groupID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, nil, err
	}

	return group, expenses, payments, members, nil
}
