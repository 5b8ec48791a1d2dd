package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/providers"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	apperrors "github.com/medilinkx/benefits-backend/pkg/errors"
)

// VoucherEventsChannel is the pub/sub channel for voucher lifecycle events
const VoucherEventsChannel = "voucher-events"

// VoucherService converts approved schemes into vouchers and lists them
type VoucherService struct {
	voucherRepo  repositories.VoucherRepository
	healthIDRepo repositories.HealthIDRepository
	schemeRepo   repositories.SchemeRepository
	eventBus     providers.EventBus
}

// NewVoucherService creates a new voucher service
func NewVoucherService(
	voucherRepo repositories.VoucherRepository,
	healthIDRepo repositories.HealthIDRepository,
	schemeRepo repositories.SchemeRepository,
	eventBus providers.EventBus,
) *VoucherService {
	return &VoucherService{
		voucherRepo:  voucherRepo,
		healthIDRepo: healthIDRepo,
		schemeRepo:   schemeRepo,
		eventBus:     eventBus,
	}
}

// CreateFromScheme creates an active voucher for a health identity from an
// approved scheme. The voucher amount defaults to the scheme coverage when
// the caller passes a non-positive amount.
func (s *VoucherService) CreateFromScheme(ctx context.Context, healthIDID, schemeID string, amount float64, validUntil time.Time) (*entities.Voucher, error) {
	if _, err := s.healthIDRepo.GetByID(ctx, healthIDID); err != nil {
		return nil, err
	}

	scheme, err := s.schemeRepo.GetByID(ctx, schemeID)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		amount = scheme.Coverage
	}
	if validUntil.IsZero() {
		return nil, apperrors.NewValidationError("validUntil is required")
	}

	voucher := &entities.Voucher{
		ID:         uuid.New().String(),
		HealthIDID: healthIDID,
		SchemeID:   scheme.ID,
		Amount:     amount,
		Status:     entities.VoucherStatusActive,
		ValidUntil: validUntil,
		CreatedAt:  time.Now(),
	}

	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	s.publish(ctx, entities.NewVoucherEvent(voucher.ID, healthIDID, entities.VoucherEventTypeCreated, map[string]interface{}{
		"scheme_id": scheme.ID,
		"amount":    voucher.Amount,
	}))

	return voucher, nil
}

// ListActive returns a health identity's active vouchers
func (s *VoucherService) ListActive(ctx context.Context, healthIDID string) ([]*entities.Voucher, error) {
	return s.voucherRepo.ListByHealthID(ctx, healthIDID, entities.VoucherStatusActive)
}

// GetByID retrieves a voucher by ID
func (s *VoucherService) GetByID(ctx context.Context, id string) (*entities.Voucher, error) {
	return s.voucherRepo.GetByID(ctx, id)
}

func (s *VoucherService) publish(ctx context.Context, event *entities.VoucherEvent) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, VoucherEventsChannel, event); err != nil {
		log.Printf("Warning: failed to publish %s event for voucher %s: %v", event.EventType, event.VoucherID, err)
	}
}
