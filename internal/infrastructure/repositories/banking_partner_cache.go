package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"estate-hub.backend/internal/domain/entities"
	domainrepos "estate-hub.backend/internal/domain/repositories"
	"estate-hub.backend/pkg/logger"
	"estate-hub.backend/pkg/metrics"
	"estate-hub.backend/pkg/redis"
)

const activeBanksCacheKey = "banks:active"

// CachedBankingPartnerRepository wraps a BankingPartnerRepository with a
// Redis read-through cache on ListActive, the hot path of loan matching.
// Every write invalidates the cache. Cache failures fall back to the
// database and are logged, never surfaced.
type CachedBankingPartnerRepository struct {
	inner domainrepos.BankingPartnerRepository
	ttl   time.Duration
}

// NewCachedBankingPartnerRepository wraps inner with a cache holding the
// active-bank set for ttl.
func NewCachedBankingPartnerRepository(inner domainrepos.BankingPartnerRepository, ttl time.Duration) *CachedBankingPartnerRepository {
	return &CachedBankingPartnerRepository{inner: inner, ttl: ttl}
}

// ListActive returns active banks from cache when fresh, the database
// otherwise
func (r *CachedBankingPartnerRepository) ListActive(ctx context.Context) ([]*entities.BankingPartner, error) {
	if cached, err := redis.Get(ctx, activeBanksCacheKey); err == nil {
		var banks []*entities.BankingPartner
		if jsonErr := json.Unmarshal([]byte(cached), &banks); jsonErr == nil {
			metrics.BankCacheHitsTotal.Inc()
			return banks, nil
		}
		// Unreadable payload: treat as a miss and refresh below.
		_ = redis.Del(ctx, activeBanksCacheKey)
	} else if !redis.IsNil(err) {
		logger.Warn(ctx, "⚠️ Bank cache read failed, falling back to database", zap.Error(err))
	}
	metrics.BankCacheMissesTotal.Inc()

	banks, err := r.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(banks); jsonErr == nil {
		if setErr := redis.Set(ctx, activeBanksCacheKey, payload, r.ttl); setErr != nil {
			logger.Warn(ctx, "⚠️ Bank cache write failed", zap.Error(setErr))
		}
	}
	return banks, nil
}

// Create creates a bank and invalidates the cache
func (r *CachedBankingPartnerRepository) Create(ctx context.Context, bank *entities.BankingPartner) error {
	if err := r.inner.Create(ctx, bank); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// GetByID delegates to the wrapped repository
func (r *CachedBankingPartnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BankingPartner, error) {
	return r.inner.GetByID(ctx, id)
}

// GetByCode delegates to the wrapped repository
func (r *CachedBankingPartnerRepository) GetByCode(ctx context.Context, code string) (*entities.BankingPartner, error) {
	return r.inner.GetByCode(ctx, code)
}

// Update updates a bank and invalidates the cache
func (r *CachedBankingPartnerRepository) Update(ctx context.Context, bank *entities.BankingPartner) error {
	if err := r.inner.Update(ctx, bank); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// List delegates to the wrapped repository
func (r *CachedBankingPartnerRepository) List(ctx context.Context, limit, offset int) ([]*entities.BankingPartner, int64, error) {
	return r.inner.List(ctx, limit, offset)
}

// SoftDelete deletes a bank and invalidates the cache
func (r *CachedBankingPartnerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := r.inner.SoftDelete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// DeactivateExpiredOffers sweeps expired offers and invalidates the cache
// when anything changed
func (r *CachedBankingPartnerRepository) DeactivateExpiredOffers(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.inner.DeactivateExpiredOffers(ctx, now)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		r.invalidate(ctx)
	}
	return count, nil
}

func (r *CachedBankingPartnerRepository) invalidate(ctx context.Context) {
	if err := redis.Del(ctx, activeBanksCacheKey); err != nil {
		logger.Warn(ctx, "⚠️ Bank cache invalidation failed", zap.Error(err))
	}
}
