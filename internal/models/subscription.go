package models

import "time"

// BDN+ tiers
const (
	TierBDNPlus         = "bdn_plus"          // consumer: service fee waived
	TierBDNPlusBusiness = "bdn_plus_business" // business/nonprofit: 5% platform fee
)

// Subscription statuses
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

// BDNPlusSubscription records a subscriber's membership tier.
// SubscriberID is a user ID for consumer tiers and a business or
// nonprofit entity ID for the business tier.
type BDNPlusSubscription struct {
	ID             uint   `gorm:"primarykey"`
	SubscriberID   string `gorm:"index:idx_subscriber,unique;not null"`
	SubscriberType string `gorm:"index:idx_subscriber,unique;not null"` // consumer, business, nonprofit
	Tier           string `gorm:"not null"`
	Status         string `gorm:"not null;default:'active'"`
	ExpiresAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Active reports whether the subscription currently grants its tier
// benefits at the given instant.
func (s *BDNPlusSubscription) Active(now time.Time) bool {
	if s.Status != SubscriptionStatusActive {
		return false
	}
	if s.ExpiresAt != nil && s.ExpiresAt.Before(now) {
		return false
	}
	return true
}
