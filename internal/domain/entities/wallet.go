package entities

import "time"

// Wallet holds the benefit balance attached to a health identity. Chain
// settlement is an external collaborator concern; this is bookkeeping only.
type Wallet struct {
	ID         string    `json:"id" db:"id"`
	HealthIDID string    `json:"health_id_id" db:"health_id_id"`
	Address    string    `json:"wallet_address" db:"address"`
	Name       string    `json:"wallet_name" db:"name"`
	Balance    float64   `json:"balance" db:"balance"`
	Currency   string    `json:"currency" db:"currency"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
