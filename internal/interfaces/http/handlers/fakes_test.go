package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
)

// Map-backed fakes so handler tests exercise real usecases without a
// database.

type fakePropertyRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*entities.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{byID: make(map[uuid.UUID]*entities.Property)}
}

func (r *fakePropertyRepo) Create(_ context.Context, property *entities.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[property.ID] = property
	return nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return property, nil
}

func (r *fakePropertyRepo) Update(_ context.Context, property *entities.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[property.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	r.byID[property.ID] = property
	return nil
}

func (r *fakePropertyRepo) List(_ context.Context, _ entities.PropertyFilter, limit, offset int) ([]*entities.Property, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entities.Property, 0, len(r.byID))
	for _, p := range r.byID {
		all = append(all, p)
	}
	return page(all, limit, offset), int64(len(all)), nil
}

func (r *fakePropertyRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owned := make([]*entities.Property, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *fakePropertyRepo) ListPendingVerification(_ context.Context, limit, offset int) ([]*entities.Property, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pending := make([]*entities.Property, 0)
	for _, p := range r.byID {
		if p.Verification == entities.VerificationPending {
			pending = append(pending, p)
		}
	}
	return page(pending, limit, offset), int64(len(pending)), nil
}

func (r *fakePropertyRepo) UpdateVerification(_ context.Context, id uuid.UUID, status entities.VerificationStatus, staffID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	property.Verification = status
	if status == entities.VerificationVerified {
		property.VerifiedBy.SetValid(staffID.String())
		property.VerifiedAt.SetValid(time.Now())
	}
	return nil
}

func (r *fakePropertyRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeBankRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*entities.BankingPartner
}

func newFakeBankRepo() *fakeBankRepo {
	return &fakeBankRepo{byID: make(map[uuid.UUID]*entities.BankingPartner)}
}

func (r *fakeBankRepo) Create(_ context.Context, bank *entities.BankingPartner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[bank.ID] = bank
	return nil
}

func (r *fakeBankRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.BankingPartner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bank, ok := r.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return bank, nil
}

func (r *fakeBankRepo) GetByCode(_ context.Context, code string) (*entities.BankingPartner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, bank := range r.byID {
		if bank.Code == code {
			return bank, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *fakeBankRepo) Update(_ context.Context, bank *entities.BankingPartner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[bank.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	r.byID[bank.ID] = bank
	return nil
}

func (r *fakeBankRepo) List(_ context.Context, limit, offset int) ([]*entities.BankingPartner, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entities.BankingPartner, 0, len(r.byID))
	for _, bank := range r.byID {
		all = append(all, bank)
	}
	return page(all, limit, offset), int64(len(all)), nil
}

func (r *fakeBankRepo) ListActive(_ context.Context) ([]*entities.BankingPartner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	active := make([]*entities.BankingPartner, 0)
	for _, bank := range r.byID {
		if bank.Active {
			active = append(active, bank)
		}
	}
	return active, nil
}

func (r *fakeBankRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeBankRepo) DeactivateExpiredOffers(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*entities.User
	saved map[uuid.UUID][]uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:  make(map[uuid.UUID]*entities.User),
		saved: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id uuid.UUID, role entities.UserRole) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*entities.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entities.User, 0, len(r.byID))
	for _, user := range r.byID {
		all = append(all, user)
	}
	return page(all, limit, offset), int64(len(all)), nil
}

func (r *fakeUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) AddSavedProperty(_ context.Context, userID, propertyID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.saved[userID] {
		if id == propertyID {
			return nil
		}
	}
	r.saved[userID] = append(r.saved[userID], propertyID)
	return nil
}

func (r *fakeUserRepo) RemoveSavedProperty(_ context.Context, userID, propertyID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.saved[userID][:0]
	for _, id := range r.saved[userID] {
		if id != propertyID {
			kept = append(kept, id)
		}
	}
	r.saved[userID] = kept
	return nil
}

func (r *fakeUserRepo) ListSavedProperties(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.saved[userID]...), nil
}

type fakeStaffRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*entities.StaffProfile
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{profiles: make(map[uuid.UUID]*entities.StaffProfile)}
}

func (r *fakeStaffRepo) Create(_ context.Context, profile *entities.StaffProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeStaffRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.StaffProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return profile, nil
}

func (r *fakeStaffRepo) IncrementPropertiesVerified(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile, ok := r.profiles[userID]; ok {
		profile.PropertiesVerified++
	}
	return nil
}

func (r *fakeStaffRepo) IncrementAppointmentsHandled(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile, ok := r.profiles[userID]; ok {
		profile.AppointmentsHandled++
	}
	return nil
}

type fakeEnquiryRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*entities.Enquiry
}

func newFakeEnquiryRepo() *fakeEnquiryRepo {
	return &fakeEnquiryRepo{byID: make(map[uuid.UUID]*entities.Enquiry)}
}

func (r *fakeEnquiryRepo) Create(_ context.Context, enquiry *entities.Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[enquiry.ID] = enquiry
	return nil
}

func (r *fakeEnquiryRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	enquiry, ok := r.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return enquiry, nil
}

func (r *fakeEnquiryRepo) List(_ context.Context, status entities.EnquiryStatus, limit, offset int) ([]*entities.Enquiry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*entities.Enquiry, 0)
	for _, enquiry := range r.byID {
		if status == "" || enquiry.Status == status {
			matched = append(matched, enquiry)
		}
	}
	return page(matched, limit, offset), int64(len(matched)), nil
}

func (r *fakeEnquiryRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.EnquiryStatus, handledBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	enquiry, ok := r.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	enquiry.Status = status
	if handledBy != "" {
		enquiry.HandledBy.SetValid(handledBy)
	}
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
