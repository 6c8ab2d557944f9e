package expense

import (
	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/internal/ledger/split"
)

// ParticipantRequest represents one participant entry in a split request.
// Only the field matching the chosen split method is consulted: percentage
// for PERCENTAGE, amount for EXACT, shares for SHARES.
type ParticipantRequest struct {
	UserID     int64    `json:"user_id" validate:"required"`
	Percentage *float64 `json:"percentage,omitempty"`
	Amount     *string  `json:"amount,omitempty"`
	Shares     *int     `json:"shares,omitempty"`
}

// CreateExpenseRequest represents the request to create an expense.
// Monetary amounts are decimal strings ("75.50") to avoid binary floats on
// the wire.
type CreateExpenseRequest struct {
	GroupID      int64                 `json:"group_id" validate:"required"`
	Description  string                `json:"description" validate:"required,min=1,max=255"`
	Amount       string                `json:"amount" validate:"required"`
	CurrencyCode string                `json:"currency_code,omitempty"`
	SplitMethod  string                `json:"split_method" validate:"required,oneof=EQUAL PERCENTAGE EXACT SHARES"`
	Participants []*ParticipantRequest `json:"participants" validate:"required,min=1"`
}

// PreviewSplitRequest represents the request to validate and preview a split
// without persisting anything. This is the compose-time check a client runs
// before submitting the expense.
type PreviewSplitRequest struct {
	Amount       string                `json:"amount" validate:"required"`
	CurrencyCode string                `json:"currency_code" validate:"required"`
	SplitMethod  string                `json:"split_method" validate:"required,oneof=EQUAL PERCENTAGE EXACT SHARES"`
	Participants []*ParticipantRequest `json:"participants" validate:"required,min=1"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID            int64                  `json:"id"`
	GroupID       int64                  `json:"group_id"`
	PayerID       int64                  `json:"payer_id"`
	PayerUsername string                 `json:"payer_username,omitempty"`
	Description   string                 `json:"description"`
	Amount        string                 `json:"amount"`
	CurrencyCode  string                 `json:"currency_code"`
	SplitMethod   string                 `json:"split_method"`
	CreatedAt     string                 `json:"created_at"`
	Participants  []*ParticipantResponse `json:"participants,omitempty"`
}

// ParticipantResponse represents one participant's share in a response
type ParticipantResponse struct {
	ID              int64    `json:"id,omitempty"`
	UserID          int64    `json:"user_id"`
	Username        string   `json:"username,omitempty"`
	ShareAmount     string   `json:"share_amount"`
	SharePercentage *float64 `json:"share_percentage,omitempty"`
	ShareCount      *int     `json:"share_count,omitempty"`
}

// PreviewSplitResponse represents a calculated split that was not persisted
type PreviewSplitResponse struct {
	Amount       string                 `json:"amount"`
	CurrencyCode string                 `json:"currency_code"`
	SplitMethod  string                 `json:"split_method"`
	Participants []*ParticipantResponse `json:"participants"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:            e.ID,
		GroupID:       e.GroupID,
		PayerID:       e.PayerID,
		PayerUsername: e.PayerUsername,
		Description:   e.Description,
		Amount:        e.Amount.Format(e.CurrencyCode),
		CurrencyCode:  string(e.CurrencyCode),
		SplitMethod:   string(e.SplitMethod),
		CreatedAt:     e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Participant model to a ParticipantResponse DTO
func (p *Participant) ToResponse(currency ledger.Currency) *ParticipantResponse {
	return &ParticipantResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Username:        p.Username,
		ShareAmount:     p.ShareAmount.Format(currency),
		SharePercentage: p.SharePercentage,
		ShareCount:      p.ShareCount,
	}
}

// participantResponses converts calculated split participants for a preview
func participantResponses(participants []split.Participant, currency ledger.Currency) []*ParticipantResponse {
	out := make([]*ParticipantResponse, len(participants))
	for i, p := range participants {
		pct := p.SharePercentage
		resp := &ParticipantResponse{
			UserID:          p.UserID,
			ShareAmount:     p.ShareAmount.Format(currency),
			SharePercentage: &pct,
		}
		if p.ShareCount > 0 {
			count := p.ShareCount
			resp.ShareCount = &count
		}
		out[i] = resp
	}
	return out
}
