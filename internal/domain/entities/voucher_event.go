package entities

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// VoucherEventType represents the type of voucher lifecycle event
type VoucherEventType string

const (
	VoucherEventTypeCreated              VoucherEventType = "voucher_created"
	VoucherEventTypeClaimed              VoucherEventType = "voucher_claimed"
	VoucherEventTypeExpired              VoucherEventType = "voucher_expired"
	VoucherEventTypeTransactionCompleted VoucherEventType = "transaction_completed"
)

// VoucherEvent is a real-time update event published on voucher and
// redemption state changes
type VoucherEvent struct {
	ID            string                 `json:"id"`
	VoucherID     string                 `json:"voucher_id"`
	HealthIDID    string                 `json:"health_id_id"`
	EventType     VoucherEventType       `json:"event_type"`
	Timestamp     time.Time              `json:"timestamp"`
	ChangedFields map[string]interface{} `json:"changed_fields"`
}

// NewVoucherEvent creates a new voucher event
func NewVoucherEvent(voucherID, healthIDID string, eventType VoucherEventType, changedFields map[string]interface{}) *VoucherEvent {
	return &VoucherEvent{
		ID:            generateEventID(),
		VoucherID:     voucherID,
		HealthIDID:    healthIDID,
		EventType:     eventType,
		Timestamp:     time.Now(),
		ChangedFields: changedFields,
	}
}

func generateEventID() string {
	return time.Now().Format("20060102150405") + "-" + randomString(8)
}

func randomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp-based if crypto/rand fails
		return time.Now().Format("150405.000")
	}
	return hex.EncodeToString(bytes)[:length]
}
