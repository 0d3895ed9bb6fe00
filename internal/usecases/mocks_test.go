package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"estate-hub.backend/internal/domain/entities"
)

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *entities.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) List(ctx context.Context, filter entities.PropertyFilter, limit, offset int) ([]*entities.Property, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Property), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Property), args.Error(1)
}

func (m *MockPropertyRepository) ListPendingVerification(ctx context.Context, limit, offset int) ([]*entities.Property, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Property), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, staffID uuid.UUID) error {
	args := m.Called(ctx, id, status, staffID)
	return args.Error(0)
}

func (m *MockPropertyRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBankingPartnerRepository struct {
	mock.Mock
}

func (m *MockBankingPartnerRepository) Create(ctx context.Context, bank *entities.BankingPartner) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankingPartnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BankingPartner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BankingPartner), args.Error(1)
}

func (m *MockBankingPartnerRepository) GetByCode(ctx context.Context, code string) (*entities.BankingPartner, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BankingPartner), args.Error(1)
}

func (m *MockBankingPartnerRepository) Update(ctx context.Context, bank *entities.BankingPartner) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankingPartnerRepository) List(ctx context.Context, limit, offset int) ([]*entities.BankingPartner, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.BankingPartner), args.Get(1).(int64), args.Error(2)
}

func (m *MockBankingPartnerRepository) ListActive(ctx context.Context) ([]*entities.BankingPartner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BankingPartner), args.Error(1)
}

func (m *MockBankingPartnerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBankingPartnerRepository) DeactivateExpiredOffers(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) AddSavedProperty(ctx context.Context, userID, propertyID uuid.UUID) error {
	args := m.Called(ctx, userID, propertyID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveSavedProperty(ctx context.Context, userID, propertyID uuid.UUID) error {
	args := m.Called(ctx, userID, propertyID)
	return args.Error(0)
}

func (m *MockUserRepository) ListSavedProperties(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type MockStaffProfileRepository struct {
	mock.Mock
}

func (m *MockStaffProfileRepository) Create(ctx context.Context, profile *entities.StaffProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockStaffProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StaffProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StaffProfile), args.Error(1)
}

func (m *MockStaffProfileRepository) IncrementPropertiesVerified(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockStaffProfileRepository) IncrementAppointmentsHandled(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) List(ctx context.Context, status entities.AppointmentStatus, limit, offset int) ([]*entities.Appointment, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Appointment), args.Get(1).(int64), args.Error(2)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AppointmentStatus, staffID uuid.UUID, notes string) error {
	args := m.Called(ctx, id, status, staffID, notes)
	return args.Error(0)
}

func (m *MockAppointmentRepository) ExpirePastPending(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID, includeHidden bool) ([]*entities.Review, error) {
	args := m.Called(ctx, propertyID, includeHidden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByPropertyAndUser(ctx context.Context, propertyID, userID uuid.UUID) (*entities.Review, error) {
	args := m.Called(ctx, propertyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ReviewStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
