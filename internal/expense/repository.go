package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/internal/ledger/split"
)

// Repository handles expense and participant data persistence. Monetary
// amounts are stored as BIGINT minor units.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateExpense inserts an expense and its participants in one transaction,
// so a failed participant insert never leaves a half-written expense behind.
func (r *Repository) CreateExpense(ctx context.Context, payerID int64, currency ledger.Currency, amount ledger.Money, req *CreateExpenseRequest, shares []split.Participant) (*ExpenseWithParticipants, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (group_id, payer_id, description, amount_minor, currency_code, split_method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, group_id, payer_id, description, amount_minor, currency_code, split_method, created_at
	`

	expense := &Expense{}
	err = tx.QueryRowContext(ctx, query,
		req.GroupID,
		payerID,
		req.Description,
		amount,
		currency,
		req.SplitMethod,
	).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.CurrencyCode,
		&expense.SplitMethod,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	participantQuery := `
		INSERT INTO expense_participants (expense_id, user_id, share_amount_minor, share_percentage, share_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, expense_id, user_id, share_amount_minor, share_percentage, share_count
	`

	participants := make([]*Participant, len(shares))
	for i, share := range shares {
		pct := share.SharePercentage
		var count *int
		if share.ShareCount > 0 {
			c := share.ShareCount
			count = &c
		}

		participant := &Participant{}
		err = tx.QueryRowContext(ctx, participantQuery, expense.ID, share.UserID, share.ShareAmount, pct, count).Scan(
			&participant.ID,
			&participant.ExpenseID,
			&participant.UserID,
			&participant.ShareAmount,
			&participant.SharePercentage,
			&participant.ShareCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create expense participant: %w", err)
		}
		participants[i] = participant
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %w", err)
	}

	return &ExpenseWithParticipants{
		Expense:      expense,
		Participants: participants,
	}, nil
}

// GetExpenseByID retrieves an expense by its ID
func (r *Repository) GetExpenseByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT e.id, e.group_id, e.payer_id, e.description, e.amount_minor, e.currency_code, e.split_method, e.created_at, u.username
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.CurrencyCode,
		&expense.SplitMethod,
		&expense.CreatedAt,
		&expense.PayerUsername,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// GetParticipantsByExpenseID retrieves all participants of an expense
func (r *Repository) GetParticipantsByExpenseID(ctx context.Context, expenseID int64) ([]*Participant, error) {
	query := `
		SELECT p.id, p.expense_id, p.user_id, p.share_amount_minor, p.share_percentage, p.share_count, u.username
		FROM expense_participants p
		JOIN users u ON p.user_id = u.id
		WHERE p.expense_id = $1
		ORDER BY p.id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		participant := &Participant{}
		if err := rows.Scan(
			&participant.ID,
			&participant.ExpenseID,
			&participant.UserID,
			&participant.ShareAmount,
			&participant.SharePercentage,
			&participant.ShareCount,
			&participant.Username,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, participant)
	}

	return participants, rows.Err()
}

// ListExpensesByGroupID retrieves expenses for a group with pagination
func (r *Repository) ListExpensesByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM expenses WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT e.id, e.group_id, e.payer_id, e.description, e.amount_minor, e.currency_code, e.split_method, e.created_at, u.username
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.group_id = $1
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.PayerID,
			&expense.Description,
			&expense.Amount,
			&expense.CurrencyCode,
			&expense.SplitMethod,
			&expense.CreatedAt,
			&expense.PayerUsername,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, total, rows.Err()
}

// DeleteExpense deletes an expense; participants go with it via ON DELETE CASCADE
func (r *Repository) DeleteExpense(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// ListActiveExpenses returns the group's expenses with participants attached,
// in the read-only shape the balance engine consumes. This is the snapshot
// feed for ledger.Service.
func (r *Repository) ListActiveExpenses(ctx context.Context, groupID int64) ([]ledger.Expense, error) {
	query := `
		SELECT e.id, e.payer_id, e.amount_minor, e.currency_code, p.user_id, p.share_amount_minor
		FROM expenses e
		JOIN expense_participants p ON p.expense_id = e.id
		WHERE e.group_id = $1
		ORDER BY e.id, p.id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active expenses: %w", err)
	}
	defer rows.Close()

	var expenses []ledger.Expense
	byID := make(map[int64]int)

	for rows.Next() {
		var (
			id, payerID int64
			amount      ledger.Money
			currency    ledger.Currency
			share       ledger.ParticipantShare
		)
		if err := rows.Scan(&id, &payerID, &amount, &currency, &share.UserID, &share.ShareAmount); err != nil {
			return nil, fmt.Errorf("failed to scan active expense: %w", err)
		}

		idx, ok := byID[id]
		if !ok {
			expenses = append(expenses, ledger.Expense{
				ID:       id,
				PayerID:  payerID,
				Amount:   amount,
				Currency: currency,
			})
			idx = len(expenses) - 1
			byID[id] = idx
		}
		expenses[idx].Participants = append(expenses[idx].Participants, share)
	}

	return expenses, rows.Err()
}
