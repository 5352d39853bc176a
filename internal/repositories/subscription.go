package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bdn/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository stores BDN+ membership records.
type SubscriptionRepository interface {
	GetActive(ctx context.Context, subscriberID, subscriberType string) (*models.BDNPlusSubscription, error)
	Upsert(ctx context.Context, sub *models.BDNPlusSubscription) error
	Cancel(ctx context.Context, subscriberID, subscriberType string) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetActive(ctx context.Context, subscriberID, subscriberType string) (*models.BDNPlusSubscription, error) {
	var sub models.BDNPlusSubscription
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND subscriber_type = ? AND status = ?",
			subscriberID, subscriberType, models.SubscriptionStatusActive).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if !sub.Active(time.Now()) {
		return nil, ErrSubscriptionNotFound
	}
	return &sub, nil
}

func (r *subscriptionRepository) Upsert(ctx context.Context, sub *models.BDNPlusSubscription) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subscriber_id"}, {Name: "subscriber_type"}},
			UpdateAll: true,
		}).
		Create(sub).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) Cancel(ctx context.Context, subscriberID, subscriberType string) error {
	result := r.db.WithContext(ctx).
		Model(&models.BDNPlusSubscription{}).
		Where("subscriber_id = ? AND subscriber_type = ?", subscriberID, subscriberType).
		Update("status", models.SubscriptionStatusCancelled)
	if result.Error != nil {
		return fmt.Errorf("failed to cancel subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}
