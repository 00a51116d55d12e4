package models

import "time"

// XPTransaction is one entry of the append-only XP ledger. Rows are never
// updated or deleted; users.total_points is the denormalized running sum.
type XPTransaction struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      int       `json:"amount"`
	Source      string    `json:"source"`
	SourceID    *string   `json:"source_id"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
