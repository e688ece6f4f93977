// Package catalog resolves a barber's published services and working hours.
// It is the authoritative price source at booking time: clients name
// services, they never supply prices.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/udayanalone/BarberConnect/internal/models"
)

const cacheTTL = 60 * time.Second

type Store interface {
	// ProfileByID loads a profile with its services in catalog order, or a
	// barber_not_found business error.
	ProfileByID(ctx context.Context, id uint) (*models.BarberProfile, error)
}

// Lookup is a read-through cache over the profile store. The Redis client
// is optional; with a nil client every read goes straight to the store.
type Lookup struct {
	store Store
	cache *redis.Client
	log   *zap.Logger
}

func NewLookup(store Store, cache *redis.Client, log *zap.Logger) *Lookup {
	return &Lookup{
		store: store,
		cache: cache,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func cacheKey(id uint) string {
	return fmt.Sprintf("barber:profile:%d", id)
}

func (l *Lookup) Profile(ctx context.Context, id uint) (*models.BarberProfile, error) {
	if l.cache != nil {
		if raw, err := l.cache.Get(ctx, cacheKey(id)).Bytes(); err == nil {
			var profile models.BarberProfile
			if err := json.Unmarshal(raw, &profile); err == nil {
				return &profile, nil
			}
		}
	}

	profile, err := l.store.ProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if raw, err := json.Marshal(profile); err == nil {
			if err := l.cache.Set(ctx, cacheKey(id), raw, cacheTTL).Err(); err != nil {
				l.log.Warn("profile cache write failed", zap.Uint("profile_id", id), zap.Error(err))
			}
		}
	}

	return profile, nil
}

// Invalidate drops the cached profile. Called after profile edits, service
// catalog changes and rating-aggregate writes.
func (l *Lookup) Invalidate(ctx context.Context, id uint) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Del(ctx, cacheKey(id)).Err(); err != nil {
		l.log.Warn("profile cache invalidation failed", zap.Uint("profile_id", id), zap.Error(err))
	}
}
