package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bdn/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPlanNotFound = errors.New("subscription box plan not found")
	ErrBoxNotFound  = errors.New("subscription box not found")
)

// SubscriptionBoxRepository stores plans, boxes, and the order and
// shipment records produced each billing cycle.
type SubscriptionBoxRepository interface {
	CreatePlan(ctx context.Context, plan *models.SubscriptionBoxPlan) error
	GetPlan(ctx context.Context, planID string) (*models.SubscriptionBoxPlan, error)
	GetPlansByMerchant(ctx context.Context, merchantID string) ([]*models.SubscriptionBoxPlan, error)

	CreateBox(ctx context.Context, box *models.SubscriptionBox) error
	GetBox(ctx context.Context, boxID string) (*models.SubscriptionBox, error)
	GetBoxesByUser(ctx context.Context, userID string) ([]*models.SubscriptionBox, error)
	GetDueBoxes(ctx context.Context, asOf time.Time, limit int) ([]*models.SubscriptionBox, error)

	// SaveCycle persists one processed billing cycle atomically: the
	// order, the shipment, and the advanced box state.
	SaveCycle(ctx context.Context, box *models.SubscriptionBox, order *models.SubscriptionOrder, shipment *models.Shipment) error
}

type subscriptionBoxRepository struct {
	db *gorm.DB
}

func NewSubscriptionBoxRepository(db *gorm.DB) SubscriptionBoxRepository {
	return &subscriptionBoxRepository{db: db}
}

func (r *subscriptionBoxRepository) CreatePlan(ctx context.Context, plan *models.SubscriptionBoxPlan) error {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

func (r *subscriptionBoxRepository) GetPlan(ctx context.Context, planID string) (*models.SubscriptionBoxPlan, error) {
	var plan models.SubscriptionBoxPlan
	err := r.db.WithContext(ctx).Where("id = ?", planID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return &plan, nil
}

func (r *subscriptionBoxRepository) GetPlansByMerchant(ctx context.Context, merchantID string) ([]*models.SubscriptionBoxPlan, error) {
	var plans []*models.SubscriptionBoxPlan
	err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

func (r *subscriptionBoxRepository) CreateBox(ctx context.Context, box *models.SubscriptionBox) error {
	if err := r.db.WithContext(ctx).Create(box).Error; err != nil {
		return fmt.Errorf("failed to create subscription box: %w", err)
	}
	return nil
}

func (r *subscriptionBoxRepository) GetBox(ctx context.Context, boxID string) (*models.SubscriptionBox, error) {
	var box models.SubscriptionBox
	err := r.db.WithContext(ctx).Where("id = ?", boxID).First(&box).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoxNotFound
		}
		return nil, fmt.Errorf("failed to get subscription box: %w", err)
	}
	return &box, nil
}

func (r *subscriptionBoxRepository) GetBoxesByUser(ctx context.Context, userID string) ([]*models.SubscriptionBox, error) {
	var boxes []*models.SubscriptionBox
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&boxes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscription boxes: %w", err)
	}
	return boxes, nil
}

// GetDueBoxes returns active boxes whose next billing date has
// passed. This is the query a billing scheduler drains.
func (r *subscriptionBoxRepository) GetDueBoxes(ctx context.Context, asOf time.Time, limit int) ([]*models.SubscriptionBox, error) {
	var boxes []*models.SubscriptionBox
	err := r.db.WithContext(ctx).
		Where("status = ? AND next_billing_date <= ?", models.BoxStatusActive, asOf).
		Order("next_billing_date ASC").
		Limit(limit).
		Find(&boxes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due boxes: %w", err)
	}
	return boxes, nil
}

func (r *subscriptionBoxRepository) SaveCycle(ctx context.Context, box *models.SubscriptionBox, order *models.SubscriptionOrder, shipment *models.Shipment) error {
	err := r.db.WithContext(ctx).Transaction(func(dtx *gorm.DB) error {
		if err := dtx.Create(order).Error; err != nil {
			return err
		}
		if err := dtx.Create(shipment).Error; err != nil {
			return err
		}
		return dtx.Save(box).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save billing cycle: %w", err)
	}
	return nil
}
