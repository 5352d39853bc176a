// Package subscription answers whether a user or entity currently
// holds a BDN+ tier. Fee calculations branch on these answers, so the
// lookups sit behind a small interface with a database-backed
// implementation and a static in-memory one for tests and seeding.
package subscription

import (
	"context"
	"errors"
	"fmt"

	"bdn/internal/models"
	"bdn/internal/repositories"
)

// Subscriber types used in status lookups
const (
	SubscriberTypeConsumer  = "consumer"
	SubscriberTypeBusiness  = "business"
	SubscriberTypeNonprofit = "nonprofit"
)

// StatusProvider reports current BDN+ membership.
type StatusProvider interface {
	HasBDNPlus(ctx context.Context, userID string) (bool, error)
	HasBDNPlusBusiness(ctx context.Context, entityID, entityType string) (bool, error)
	MerchantHasBDNPlusBusiness(ctx context.Context, merchantID string) (bool, error)
}

// Repository is the persistence surface the service needs.
type Repository interface {
	GetActive(ctx context.Context, subscriberID, subscriberType string) (*models.BDNPlusSubscription, error)
}

// Cache is the subset of the cache service used for status lookups.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

type service struct {
	repo  Repository
	cache Cache
}

// NewService creates a database-backed status provider. The cache is
// optional; lookups go straight to the repository without one.
func NewService(repo Repository, cache Cache) StatusProvider {
	if repo == nil {
		panic("subscription repository is required")
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) HasBDNPlus(ctx context.Context, userID string) (bool, error) {
	return s.lookup(ctx, userID, SubscriberTypeConsumer)
}

func (s *service) HasBDNPlusBusiness(ctx context.Context, entityID, entityType string) (bool, error) {
	return s.lookup(ctx, entityID, entityType)
}

func (s *service) MerchantHasBDNPlusBusiness(ctx context.Context, merchantID string) (bool, error) {
	return s.lookup(ctx, merchantID, SubscriberTypeBusiness)
}

func (s *service) lookup(ctx context.Context, subscriberID, subscriberType string) (bool, error) {
	key := CacheKey(subscriberID, subscriberType)

	if s.cache != nil {
		var active bool
		if found, err := s.cache.Get(ctx, key, &active); err == nil && found {
			return active, nil
		}
	}

	active := false
	sub, err := s.repo.GetActive(ctx, subscriberID, subscriberType)
	switch {
	case err == nil:
		active = sub != nil
	case errors.Is(err, repositories.ErrSubscriptionNotFound):
		active = false
	default:
		return false, fmt.Errorf("failed to look up subscription status: %w", err)
	}

	if s.cache != nil {
		// Best effort; a cache write failure never fails the lookup.
		_ = s.cache.Set(ctx, key, active)
	}
	return active, nil
}

// CacheKey is the cache key under which a subscriber's BDN+ status
// lives. Writers that change membership must invalidate it.
func CacheKey(subscriberID, subscriberType string) string {
	return fmt.Sprintf("bdnplus:%s:%s", subscriberType, subscriberID)
}
