package ledger

// Member is a group member as seen by the balance engine.
type Member struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// ParticipantShare is one member's share of an expense.
type ParticipantShare struct {
	UserID      int64 `json:"user_id"`
	ShareAmount Money `json:"share_amount"`
}

// Expense is the read-only snapshot of a persisted expense consumed by the
// balance engine. Participants are already attached; the engine never writes.
type Expense struct {
	ID           int64              `json:"id"`
	PayerID      int64              `json:"payer_id"`
	Amount       Money              `json:"amount"`
	Currency     Currency           `json:"currency"`
	Participants []ParticipantShare `json:"participants"`
}

// Payment is the read-only snapshot of a direct payer→recipient payment.
type Payment struct {
	ID          int64    `json:"id"`
	PayerID     int64    `json:"payer_id"`
	RecipientID int64    `json:"recipient_id"`
	Amount      Money    `json:"amount"`
	Currency    Currency `json:"currency"`
}

// Balance is a member's net position in a group. Positive means the member is
// owed money, negative means the member owes money. Derived, never persisted.
type Balance struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Amount   Money  `json:"amount"`
}

// SettlementTransaction is one suggested payment in a settlement plan.
// Derived output, never persisted.
type SettlementTransaction struct {
	PayerID       int64  `json:"payer_id"`
	PayerName     string `json:"payer_name"`
	RecipientID   int64  `json:"recipient_id"`
	RecipientName string `json:"recipient_name"`
	Amount        Money  `json:"amount"`
}

// RecordKind identifies the source table of an excluded record.
type RecordKind string

const (
	RecordKindExpense RecordKind = "EXPENSE"
	RecordKindPayment RecordKind = "PAYMENT"
)

// ExcludedRecord flags an expense or payment that was left out of a balance
// computation because its currency differs from the group's. Cross-currency
// records are excluded, not converted.
type ExcludedRecord struct {
	Kind     RecordKind `json:"kind"`
	ID       int64      `json:"id"`
	Currency Currency   `json:"currency"`
}
