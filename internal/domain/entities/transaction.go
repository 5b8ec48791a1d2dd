package entities

import "time"

// TransactionStatus represents the settlement state of a redemption
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction records a voucher redemption at a hospital
type Transaction struct {
	ID           string            `json:"id" db:"id"`
	VoucherID    string            `json:"voucher_id" db:"voucher_id"`
	HealthIDID   string            `json:"health_id_id" db:"health_id_id"`
	HospitalName string            `json:"hospital_name" db:"hospital_name"`
	Amount       float64           `json:"amount" db:"amount"`
	Status       TransactionStatus `json:"status" db:"status"`
	Reference    string            `json:"transaction_id" db:"reference"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
}

// Receipt is the view assembled for the post-payment receipt screen
type Receipt struct {
	TransactionID string    `json:"transaction_id"`
	Reference     string    `json:"reference"`
	PatientName   string    `json:"patient_name"`
	SchemeName    string    `json:"scheme_name"`
	HospitalName  string    `json:"hospital_name"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	IssuedAt      time.Time `json:"issued_at"`
}
