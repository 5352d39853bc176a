package subscription

import (
	"context"
	"sync"
)

// StaticProvider is an in-memory StatusProvider for tests and local
// development. Membership is whatever has been granted on it; there
// are no hardcoded IDs.
type StaticProvider struct {
	mu      sync.RWMutex
	members map[string]bool
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{members: make(map[string]bool)}
}

// Grant marks a subscriber as holding an active BDN+ tier.
func (p *StaticProvider) Grant(subscriberID, subscriberType string) {
	p.mu.Lock()
	p.members[CacheKey(subscriberID, subscriberType)] = true
	p.mu.Unlock()
}

// Revoke removes a subscriber's membership.
func (p *StaticProvider) Revoke(subscriberID, subscriberType string) {
	p.mu.Lock()
	delete(p.members, CacheKey(subscriberID, subscriberType))
	p.mu.Unlock()
}

func (p *StaticProvider) HasBDNPlus(_ context.Context, userID string) (bool, error) {
	return p.has(userID, SubscriberTypeConsumer), nil
}

func (p *StaticProvider) HasBDNPlusBusiness(_ context.Context, entityID, entityType string) (bool, error) {
	return p.has(entityID, entityType), nil
}

func (p *StaticProvider) MerchantHasBDNPlusBusiness(_ context.Context, merchantID string) (bool, error) {
	return p.has(merchantID, SubscriberTypeBusiness), nil
}

func (p *StaticProvider) has(subscriberID, subscriberType string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.members[CacheKey(subscriberID, subscriberType)]
}
