package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fkhayef/splitledger/internal/ledger"
)

// Repository handles payment data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new payment repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new payment into the database
func (r *Repository) Create(ctx context.Context, payerID int64, currency ledger.Currency, amount ledger.Money, req *CreatePaymentRequest) (*Payment, error) {
	query := `
		INSERT INTO payments (group_id, payer_id, recipient_id, amount_minor, currency_code, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, group_id, payer_id, recipient_id, amount_minor, currency_code, note, created_at
	`

	payment := &Payment{}
	err := r.db.QueryRowContext(ctx, query,
		req.GroupID,
		payerID,
		req.RecipientID,
		amount,
		currency,
		req.Note,
	).Scan(
		&payment.ID,
		&payment.GroupID,
		&payment.PayerID,
		&payment.RecipientID,
		&payment.Amount,
		&payment.CurrencyCode,
		&payment.Note,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

// GetByID retrieves a payment by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Payment, error) {
	query := `
		SELECT p.id, p.group_id, p.payer_id, p.recipient_id, p.amount_minor, p.currency_code, p.note, p.created_at,
		       payer.username, recipient.username
		FROM payments p
		JOIN users payer ON p.payer_id = payer.id
		JOIN users recipient ON p.recipient_id = recipient.id
		WHERE p.id = $1
	`

	payment := &Payment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&payment.ID,
		&payment.GroupID,
		&payment.PayerID,
		&payment.RecipientID,
		&payment.Amount,
		&payment.CurrencyCode,
		&payment.Note,
		&payment.CreatedAt,
		&payment.PayerUsername,
		&payment.RecipientUsername,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return payment, nil
}

// ListByGroupID retrieves payments for a group with pagination
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Payment, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM payments WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	query := `
		SELECT p.id, p.group_id, p.payer_id, p.recipient_id, p.amount_minor, p.currency_code, p.note, p.created_at,
		       payer.username, recipient.username
		FROM payments p
		JOIN users payer ON p.payer_id = payer.id
		JOIN users recipient ON p.recipient_id = recipient.id
		WHERE p.group_id = $1
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		payment := &Payment{}
		if err := rows.Scan(
			&payment.ID,
			&payment.GroupID,
			&payment.PayerID,
			&payment.RecipientID,
			&payment.Amount,
			&payment.CurrencyCode,
			&payment.Note,
			&payment.CreatedAt,
			&payment.PayerUsername,
			&payment.RecipientUsername,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, total, rows.Err()
}

// Delete removes a payment
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// ListActivePayments returns the group's payments in the read-only shape the
// balance engine consumes. This is the snapshot feed for ledger.Service.
func (r *Repository) ListActivePayments(ctx context.Context, groupID int64) ([]ledger.Payment, error) {
	query := `
		SELECT id, payer_id, recipient_id, amount_minor, currency_code
		FROM payments
		WHERE group_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active payments: %w", err)
	}
	defer rows.Close()

	var payments []ledger.Payment
	for rows.Next() {
		var p ledger.Payment
		if err := rows.Scan(&p.ID, &p.PayerID, &p.RecipientID, &p.Amount, &p.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan active payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
