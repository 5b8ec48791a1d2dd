package entities

import "time"

// VoucherStatus represents the lifecycle state of a voucher
type VoucherStatus string

const (
	VoucherStatusActive  VoucherStatus = "active"
	VoucherStatusClaimed VoucherStatus = "claimed"
	VoucherStatusExpired VoucherStatus = "expired"
)

// Voucher is a claim-to-payment record created when an approved scheme is
// converted into a spendable benefit
type Voucher struct {
	ID         string        `json:"id" db:"id"`
	HealthIDID string        `json:"health_id_id" db:"health_id_id"`
	SchemeID   string        `json:"scheme_id" db:"scheme_id"`
	Amount     float64       `json:"amount" db:"amount"`
	Status     VoucherStatus `json:"status" db:"status"`
	ValidUntil time.Time     `json:"valid_until" db:"valid_until"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
}

// IsRedeemable reports whether the voucher can still be spent
func (v *Voucher) IsRedeemable(now time.Time) bool {
	return v.Status == VoucherStatusActive && now.Before(v.ValidUntil)
}
