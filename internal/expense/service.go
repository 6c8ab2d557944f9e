package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/internal/ledger/split"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrNotPayer        = errors.New("only the payer can modify this expense")
)

// Service handles expense business logic
type Service struct {
	repo   *Repository
	groups ledger.GroupSource
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, groups ledger.GroupSource) *Service {
	return &Service{
		repo:   repo,
		groups: groups,
	}
}

// CreateExpense validates the split configuration, calculates per-participant
// shares, and persists the expense with its participants in one transaction.
// Validation failures block the write; nothing is persisted on error.
func (s *Service) CreateExpense(ctx context.Context, payerID int64, req *CreateExpenseRequest) (*ExpenseWithParticipants, error) {
	group, err := s.groups.GetGroupInfo(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ledger.ErrGroupNotFound
	}

	// Expenses default to the group currency. A different currency is allowed
	// but such records are excluded from balance computations, not converted.
	currency := group.Currency
	if req.CurrencyCode != "" {
		currency = ledger.Currency(req.CurrencyCode)
	}

	amount, participants, err := calculateShares(req.Amount, currency, req.SplitMethod, req.Participants)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateExpense(ctx, payerID, currency, amount, req, participants)
}

// PreviewSplit validates a split configuration and returns the calculated
// shares without persisting anything. A non-nil error blocks submission on
// the client side.
func (s *Service) PreviewSplit(ctx context.Context, req *PreviewSplitRequest) (*PreviewSplitResponse, error) {
	currency := ledger.Currency(req.CurrencyCode)

	amount, participants, err := calculateShares(req.Amount, currency, req.SplitMethod, req.Participants)
	if err != nil {
		return nil, err
	}

	return &PreviewSplitResponse{
		Amount:       amount.Format(currency),
		CurrencyCode: string(currency),
		SplitMethod:  req.SplitMethod,
		Participants: participantResponses(participants, currency),
	}, nil
}

// GetExpenseByID retrieves an expense with its participants
func (s *Service) GetExpenseByID(ctx context.Context, id int64) (*ExpenseWithParticipants, error) {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	participants, err := s.repo.GetParticipantsByExpenseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithParticipants{
		Expense:      expense,
		Participants: participants,
	}, nil
}

// ListExpensesByGroupID retrieves expenses for a group
func (s *Service) ListExpensesByGroupID(ctx context.Context, groupID int64, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListExpensesByGroupID(ctx, groupID, perPage, offset)
}

// DeleteExpense deletes an expense and its participants. Only the payer can
// delete.
func (s *Service) DeleteExpense(ctx context.Context, id, userID int64) error {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return ErrExpenseNotFound
	}

	if expense.PayerID != userID {
		return ErrNotPayer
	}

	return s.repo.DeleteExpense(ctx, id)
}

// calculateShares parses the request amounts, resolves the split method into
// its typed configuration, and materializes the shares. The result always
// reconciles with the total exactly; anything else is a programming error.
func calculateShares(amountStr string, currency ledger.Currency, method string, reqParticipants []*ParticipantRequest) (ledger.Money, []split.Participant, error) {
	amount, err := ledger.ParseAmount(amountStr, currency)
	if err != nil {
		return 0, nil, err
	}

	inputs := make([]split.Input, len(reqParticipants))
	for i, p := range reqParticipants {
		in := split.Input{
			UserID:     p.UserID,
			Percentage: p.Percentage,
			Shares:     p.Shares,
		}
		if p.Amount != nil {
			share, err := ledger.ParseAmount(*p.Amount, currency)
			if err != nil {
				return 0, nil, err
			}
			in.Amount = &share
		}
		inputs[i] = in
	}

	spec, err := split.ParseSpec(split.Method(method), inputs)
	if err != nil {
		return 0, nil, err
	}

	participants, err := split.Calculate(amount, spec)
	if err != nil {
		return 0, nil, err
	}

	var total ledger.Money
	for _, p := range participants {
		total += p.ShareAmount
	}
	if total != amount {
		return 0, nil, fmt.Errorf("split does not reconcile: shares sum to %d, expected %d minor units", total, amount)
	}

	return amount, participants, nil
}
