package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/providers"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
)

// RedeemRequest carries the inputs for redeeming a voucher at a hospital
type RedeemRequest struct {
	VoucherID    string
	HealthIDID   string
	HospitalName string
	Amount       float64
}

// TransactionService redeems vouchers at hospitals and assembles receipts
type TransactionService struct {
	transactionRepo repositories.TransactionRepository
	voucherRepo     repositories.VoucherRepository
	healthIDRepo    repositories.HealthIDRepository
	schemeRepo      repositories.SchemeRepository
	walletRepo      repositories.WalletRepository
	eventBus        providers.EventBus
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepository,
	voucherRepo repositories.VoucherRepository,
	healthIDRepo repositories.HealthIDRepository,
	schemeRepo repositories.SchemeRepository,
	walletRepo repositories.WalletRepository,
	eventBus providers.EventBus,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		voucherRepo:     voucherRepo,
		healthIDRepo:    healthIDRepo,
		schemeRepo:      schemeRepo,
		walletRepo:      walletRepo,
		eventBus:        eventBus,
	}
}

// Redeem settles a voucher against a hospital: the voucher must belong to
// the health identity and still be active. On success the voucher is
// marked claimed, the wallet (when present) is debited, and lifecycle
// events are published.
func (s *TransactionService) Redeem(ctx context.Context, req RedeemRequest) (*entities.Transaction, error) {
	if _, err := s.healthIDRepo.GetByID(ctx, req.HealthIDID); err != nil {
		return nil, err
	}

	voucher, err := s.voucherRepo.GetByID(ctx, req.VoucherID)
	if err != nil {
		return nil, err
	}

	if voucher.HealthIDID != req.HealthIDID {
		return nil, apperrors.NewForbiddenError("voucher does not belong to this health id")
	}
	if !voucher.IsRedeemable(time.Now()) {
		return nil, apperrors.NewValidationError("voucher is not active")
	}

	transaction := &entities.Transaction{
		ID:           uuid.New().String(),
		VoucherID:    voucher.ID,
		HealthIDID:   req.HealthIDID,
		HospitalName: req.HospitalName,
		Amount:       req.Amount,
		Status:       entities.TransactionStatusCompleted,
		Reference:    generateReference(),
		CreatedAt:    time.Now(),
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	if err := s.voucherRepo.UpdateStatus(ctx, voucher.ID, entities.VoucherStatusClaimed); err != nil {
		return nil, err
	}

	s.debitWallet(ctx, req.HealthIDID, req.Amount)

	s.publish(ctx, entities.NewVoucherEvent(voucher.ID, req.HealthIDID, entities.VoucherEventTypeClaimed, map[string]interface{}{
		"status": string(entities.VoucherStatusClaimed),
	}))
	s.publish(ctx, entities.NewVoucherEvent(voucher.ID, req.HealthIDID, entities.VoucherEventTypeTransactionCompleted, map[string]interface{}{
		"transaction_id": transaction.ID,
		"reference":      transaction.Reference,
		"hospital_name":  transaction.HospitalName,
		"amount":         transaction.Amount,
	}))

	return transaction, nil
}

// Receipt assembles the receipt view for a completed transaction
func (s *TransactionService) Receipt(ctx context.Context, transactionID string) (*entities.Receipt, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	receipt := &entities.Receipt{
		TransactionID: transaction.ID,
		Reference:     transaction.Reference,
		HospitalName:  transaction.HospitalName,
		Amount:        transaction.Amount,
		Status:        string(transaction.Status),
		IssuedAt:      transaction.CreatedAt,
	}

	if healthID, err := s.healthIDRepo.GetByID(ctx, transaction.HealthIDID); err == nil {
		receipt.PatientName = healthID.PatientName
	}
	if voucher, err := s.voucherRepo.GetByID(ctx, transaction.VoucherID); err == nil {
		if scheme, err := s.schemeRepo.GetByID(ctx, voucher.SchemeID); err == nil {
			receipt.SchemeName = scheme.Name
		}
	}

	return receipt, nil
}

// List returns recent transactions for a health identity, newest first
func (s *TransactionService) List(ctx context.Context, healthIDID string, limit int) ([]*entities.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.transactionRepo.ListByHealthID(ctx, healthIDID, limit)
}

// Count returns the number of transactions for a health identity
func (s *TransactionService) Count(ctx context.Context, healthIDID string) (int, error) {
	return s.transactionRepo.CountByHealthID(ctx, healthIDID)
}

func (s *TransactionService) debitWallet(ctx context.Context, healthIDID string, amount float64) {
	if s.walletRepo == nil {
		return
	}
	wallet, err := s.walletRepo.GetByHealthID(ctx, healthIDID)
	if err != nil {
		// Wallet-less identities still redeem; balance tracking is best effort.
		return
	}
	if err := s.walletRepo.UpdateBalance(ctx, wallet.ID, wallet.Balance-amount); err != nil {
		log.Printf("Warning: failed to debit wallet %s: %v", wallet.ID, err)
	}
}

func (s *TransactionService) publish(ctx context.Context, event *entities.VoucherEvent) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, VoucherEventsChannel, event); err != nil {
		log.Printf("Warning: failed to publish %s event for voucher %s: %v", event.EventType, event.VoucherID, err)
	}
}

// generateReference builds the human-facing TXN reference shown on receipts
func generateReference() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "TXN" + raw[:9]
}
