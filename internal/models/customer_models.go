package models

import "time"

// Customer represents a retail customer linked to transactions.
// LifetimeValue is derived from completed transactions, never stored.
type Customer struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" db:"name" binding:"required"`
	Email         *string   `json:"email,omitempty" db:"email"`
	Phone         *string   `json:"phone,omitempty" db:"phone"`
	LoyaltyPoints int       `json:"loyalty_points" db:"loyalty_points"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
	LifetimeValue float64   `json:"lifetime_value"`
}

// NewNullString is a helper for string pointers, returning nil if s is empty.
// Useful for fields that should be NULL in the database when not provided.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
