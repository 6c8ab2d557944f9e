package ledger

// BalanceResponse represents one member's net balance in API responses.
// Amounts are formatted in the group currency's major units.
type BalanceResponse struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Balance  string `json:"balance"`
}

// ExcludedRecordResponse flags a record left out of the computation because
// of a currency mismatch.
type ExcludedRecordResponse struct {
	Kind     string `json:"kind"`
	ID       int64  `json:"id"`
	Currency string `json:"currency"`
}

// BalanceSheetResponse is the response for the group balances endpoint.
type BalanceSheetResponse struct {
	GroupID  int64                    `json:"group_id"`
	Currency string                   `json:"currency"`
	Balances []*BalanceResponse       `json:"balances"`
	Excluded []ExcludedRecordResponse `json:"excluded,omitempty"`
}

// TransactionResponse represents one suggested settlement payment.
type TransactionResponse struct {
	PayerID       int64  `json:"payer_id"`
	PayerName     string `json:"payer_name"`
	RecipientID   int64  `json:"recipient_id"`
	RecipientName string `json:"recipient_name"`
	Amount        string `json:"amount"`
}

// SettlementPlanResponse is the response for the settle-up endpoint.
type SettlementPlanResponse struct {
	GroupID      int64                    `json:"group_id"`
	Currency     string                   `json:"currency"`
	Transactions []*TransactionResponse   `json:"transactions"`
	Excluded     []ExcludedRecordResponse `json:"excluded,omitempty"`
}

// ToResponse converts a BalanceSheet to its API shape.
func (bs *BalanceSheet) ToResponse() *BalanceSheetResponse {
	resp := &BalanceSheetResponse{
		GroupID:  bs.Group.ID,
		Currency: string(bs.Group.Currency),
		Balances: make([]*BalanceResponse, len(bs.Balances)),
		Excluded: excludedResponses(bs.Excluded),
	}
	for i, b := range bs.Balances {
		resp.Balances[i] = &BalanceResponse{
			UserID:   b.UserID,
			UserName: b.UserName,
			Balance:  b.Amount.Format(bs.Group.Currency),
		}
	}
	return resp
}

// ToResponse converts a SettlementPlan to its API shape.
func (sp *SettlementPlan) ToResponse() *SettlementPlanResponse {
	resp := &SettlementPlanResponse{
		GroupID:      sp.Group.ID,
		Currency:     string(sp.Group.Currency),
		Transactions: make([]*TransactionResponse, len(sp.Transactions)),
		Excluded:     excludedResponses(sp.Excluded),
	}
	for i, t := range sp.Transactions {
		resp.Transactions[i] = &TransactionResponse{
			PayerID:       t.PayerID,
			PayerName:     t.PayerName,
			RecipientID:   t.RecipientID,
			RecipientName: t.RecipientName,
			Amount:        t.Amount.Format(sp.Group.Currency),
		}
	}
	return resp
}

func excludedResponses(records []ExcludedRecord) []ExcludedRecordResponse {
	if len(records) == 0 {
		return nil
	}
	out := make([]ExcludedRecordResponse, len(records))
	for i, r := range records {
		out[i] = ExcludedRecordResponse{
			Kind:     string(r.Kind),
			ID:       r.ID,
			Currency: string(r.Currency),
		}
	}
	return out
}
