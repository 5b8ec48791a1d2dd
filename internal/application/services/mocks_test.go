package services_test

import (
	"context"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
	"github.com/medilinkx/benefits-backend/internal/domain/repositories"
	"github.com/stretchr/testify/mock"
)

type MockHospitalRepository struct {
	mock.Mock
}

func (m *MockHospitalRepository) Create(ctx context.Context, hospital *entities.Hospital) error {
	return m.Called(ctx, hospital).Error(0)
}

func (m *MockHospitalRepository) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Hospital), args.Error(1)
}

func (m *MockHospitalRepository) Update(ctx context.Context, hospital *entities.Hospital) error {
	return m.Called(ctx, hospital).Error(0)
}

func (m *MockHospitalRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockHospitalRepository) List(ctx context.Context, filter repositories.HospitalFilter) ([]*entities.Hospital, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Hospital), args.Error(1)
}

type MockHospitalSearchRepository struct {
	mock.Mock
}

func (m *MockHospitalSearchRepository) Search(ctx context.Context, params repositories.SearchParams) ([]*entities.Hospital, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Hospital), args.Error(1)
}

func (m *MockHospitalSearchRepository) Index(ctx context.Context, hospital *entities.Hospital) error {
	return m.Called(ctx, hospital).Error(0)
}

func (m *MockHospitalSearchRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSchemeRepository struct {
	mock.Mock
}

func (m *MockSchemeRepository) Create(ctx context.Context, scheme *entities.Scheme) error {
	return m.Called(ctx, scheme).Error(0)
}

func (m *MockSchemeRepository) GetByID(ctx context.Context, id string) (*entities.Scheme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Scheme), args.Error(1)
}

func (m *MockSchemeRepository) List(ctx context.Context) ([]*entities.Scheme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Scheme), args.Error(1)
}

type MockHealthIDRepository struct {
	mock.Mock
}

func (m *MockHealthIDRepository) Create(ctx context.Context, healthID *entities.HealthID) error {
	return m.Called(ctx, healthID).Error(0)
}

func (m *MockHealthIDRepository) GetByID(ctx context.Context, id string) (*entities.HealthID, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.HealthID), args.Error(1)
}

func (m *MockHealthIDRepository) GetByNationalID(ctx context.Context, nationalID string) (*entities.HealthID, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.HealthID), args.Error(1)
}

func (m *MockHealthIDRepository) Update(ctx context.Context, healthID *entities.HealthID) error {
	return m.Called(ctx, healthID).Error(0)
}

type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) Create(ctx context.Context, voucher *entities.Voucher) error {
	return m.Called(ctx, voucher).Error(0)
}

func (m *MockVoucherRepository) GetByID(ctx context.Context, id string) (*entities.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListByHealthID(ctx context.Context, healthIDID string, status entities.VoucherStatus) ([]*entities.Voucher, error) {
	args := m.Called(ctx, healthIDID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) UpdateStatus(ctx context.Context, id string, status entities.VoucherStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entities.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*entities.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByHealthID(ctx context.Context, healthIDID string, limit int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, healthIDID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountByHealthID(ctx context.Context, healthIDID string) (int, error) {
	args := m.Called(ctx, healthIDID)
	return args.Int(0), args.Error(1)
}

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	return m.Called(ctx, wallet).Error(0)
}

func (m *MockWalletRepository) GetByHealthID(ctx context.Context, healthIDID string) (*entities.Wallet, error) {
	args := m.Called(ctx, healthIDID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *MockWalletRepository) UpdateBalance(ctx context.Context, id string, balance float64) error {
	return m.Called(ctx, id, balance).Error(0)
}

type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Create(ctx context.Context, recommendation *entities.Recommendation) error {
	return m.Called(ctx, recommendation).Error(0)
}

func (m *MockRecommendationRepository) GetLatestByHealthID(ctx context.Context, healthIDID string) (*entities.Recommendation, error) {
	args := m.Called(ctx, healthIDID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recommendation), args.Error(1)
}

type MockPreferredLocationRepository struct {
	mock.Mock
}

func (m *MockPreferredLocationRepository) Get(ctx context.Context, healthIDID string) ([]string, error) {
	args := m.Called(ctx, healthIDID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPreferredLocationRepository) Save(ctx context.Context, healthIDID string, locations []string) error {
	return m.Called(ctx, healthIDID, locations).Error(0)
}

type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.VoucherEvent) error {
	return m.Called(ctx, channel, event).Error(0)
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.VoucherEvent, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan *entities.VoucherEvent), args.Error(1)
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string, ch <-chan *entities.VoucherEvent) error {
	return m.Called(ctx, channel, ch).Error(0)
}

func (m *MockEventBus) Close() error {
	return m.Called().Error(0)
}
