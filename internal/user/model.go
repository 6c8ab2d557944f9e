package user

import "time"

// User represents a registered user. Username doubles as the display name
// shown in balances and settlement suggestions.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
