package payment

// CreatePaymentRequest represents the request to record a payment.
// Amount is a decimal string in the payment currency's major units; an empty
// currency defaults to the group currency.
type CreatePaymentRequest struct {
	GroupID      int64   `json:"group_id" validate:"required"`
	RecipientID  int64   `json:"recipient_id" validate:"required"`
	Amount       string  `json:"amount" validate:"required"`
	CurrencyCode string  `json:"currency_code,omitempty"`
	Note         *string `json:"note,omitempty" validate:"omitempty,max=255"`
}

// PaymentResponse represents the response for a payment
type PaymentResponse struct {
	ID                int64   `json:"id"`
	GroupID           int64   `json:"group_id"`
	PayerID           int64   `json:"payer_id"`
	PayerUsername     string  `json:"payer_username,omitempty"`
	RecipientID       int64   `json:"recipient_id"`
	RecipientUsername string  `json:"recipient_username,omitempty"`
	Amount            string  `json:"amount"`
	CurrencyCode      string  `json:"currency_code"`
	Note              *string `json:"note,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

// ToResponse converts a Payment model to a PaymentResponse DTO
func (p *Payment) ToResponse() *PaymentResponse {
	return &PaymentResponse{
		ID:                p.ID,
		GroupID:           p.GroupID,
		PayerID:           p.PayerID,
		PayerUsername:     p.PayerUsername,
		RecipientID:       p.RecipientID,
		RecipientUsername: p.RecipientUsername,
		Amount:            p.Amount.Format(p.CurrencyCode),
		CurrencyCode:      string(p.CurrencyCode),
		Note:              p.Note,
		CreatedAt:         p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
