package payment

import (
	"context"
	"errors"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// Common errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrCannotPaySelf   = errors.New("payer and recipient must be different users")
	ErrZeroAmount      = errors.New("payment amount must be positive")
	ErrNotPaymentActor = errors.New("only the payer or recipient can delete a payment")
)

// Service handles payment business logic
type Service struct {
	repo   *Repository
	groups ledger.GroupSource
}

// NewService creates a new payment service
func NewService(repo *Repository, groups ledger.GroupSource) *Service {
	return &Service{
		repo:   repo,
		groups: groups,
	}
}

// CreatePayment records a direct payment from the authenticated user to the
// recipient.
func (s *Service) CreatePayment(ctx context.Context, payerID int64, req *CreatePaymentRequest) (*Payment, error) {
	if payerID == req.RecipientID {
		return nil, ErrCannotPaySelf
	}

	group, err := s.groups.GetGroupInfo(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ledger.ErrGroupNotFound
	}

	currency := group.Currency
	if req.CurrencyCode != "" {
		currency = ledger.Currency(req.CurrencyCode)
	}

	amount, err := ledger.ParseAmount(req.Amount, currency)
	if err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}

	return s.repo.Create(ctx, payerID, currency, amount, req)
}

// GetByID retrieves a payment by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// ListByGroupID retrieves payments for a group with pagination
func (s *Service) ListByGroupID(ctx context.Context, groupID int64, page, perPage int) ([]*Payment, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByGroupID(ctx, groupID, perPage, offset)
}

// DeletePayment removes a recorded payment. Either party of the payment can
// delete it (e.g. recorded by mistake).
func (s *Service) DeletePayment(ctx context.Context, id, userID int64) error {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}

	if payment.PayerID != userID && payment.RecipientID != userID {
		return ErrNotPaymentActor
	}

	return s.repo.Delete(ctx, id)
}
