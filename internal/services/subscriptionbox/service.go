// Package subscriptionbox implements recurring-shipment purchases of
// physical products: plan templates, per-shipment pricing, and the
// billing/shipment schedule advanced once per cycle.
package subscriptionbox

import (
	"context"
	"fmt"
	"time"

	"bdn/internal/models"
	"bdn/internal/services/currency"
	"bdn/internal/services/fee"

	"github.com/google/uuid"
)

// Service manages subscription box plans and instances.
type Service struct {
	fees          *fee.Calculator
	subscriptions StatusProvider
}

// NewService creates a subscription box service.
func NewService(fees *fee.Calculator, subscriptions StatusProvider) *Service {
	if fees == nil {
		panic("fee calculator is required")
	}
	if subscriptions == nil {
		panic("subscription status provider is required")
	}
	return &Service{fees: fees, subscriptions: subscriptions}
}

// CreatePlan builds an immutable plan template from a product.
// Only physical products that require shipping can be offered as
// subscription boxes.
func (s *Service) CreatePlan(product *models.Product, frequency string, duration int, discountPercentage float64) (*models.SubscriptionBoxPlan, error) {
	if product.ProductType != models.ProductTypePhysical {
		return nil, fmt.Errorf("%w: product %s is %s", ErrNotPhysical, product.ID, product.ProductType)
	}
	if !product.ShippingRequired {
		return nil, fmt.Errorf("%w: product %s", ErrShippingNotRequired, product.ID)
	}
	if _, ok := periodDays[frequency]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFrequency, frequency)
	}
	if duration == 0 || duration < models.IndefiniteDuration {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, duration)
	}
	if discountPercentage < 0 || discountPercentage >= 100 {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidDiscount, discountPercentage)
	}

	return &models.SubscriptionBoxPlan{
		ID:                      uuid.NewString(),
		ProductID:               product.ID,
		MerchantID:              product.MerchantID,
		Frequency:               frequency,
		Duration:                duration,
		PricePerShipment:        product.Price,
		ShippingCostPerShipment: product.ShippingCost,
		DiscountPercentage:      discountPercentage,
		Currency:                product.Currency,
		CreatedAt:               time.Now(),
	}, nil
}

// CalculatePricing computes the per-shipment cost breakdown for a
// plan and quantity. The discount applies to the product price only,
// never to shipping; the consumer service fee is charged on the
// discounted subtotal.
func (s *Service) CalculatePricing(ctx context.Context, plan *models.SubscriptionBoxPlan, quantity int, userID string) (*PricingBreakdown, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	hasBDNPlus, err := s.subscriptions.HasBDNPlus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check BDN+ status: %w", err)
	}

	price := currency.Round2(plan.PricePerShipment * float64(quantity))
	shipping := currency.Round2(plan.ShippingCostPerShipment * float64(quantity))

	discount := 0.0
	if plan.DiscountPercentage > 0 {
		discount = currency.Round2(price * plan.DiscountPercentage / 100)
	}
	subtotal := currency.Round2(price + shipping - discount)

	serviceFee := s.fees.ConsumerServiceFee(subtotal, plan.Currency, hasBDNPlus)

	return &PricingBreakdown{
		PricePerShipment:    price,
		ShippingPerShipment: shipping,
		DiscountAmount:      discount,
		Subtotal:            subtotal,
		ServiceFee:          serviceFee,
		TotalPerShipment:    currency.Round2(subtotal + serviceFee),
		Currency:            plan.Currency,
		HasBDNPlus:          hasBDNPlus,
	}, nil
}

// CreateBox binds a plan to a user. The first billing and shipment
// dates sit one period after the start date; a zero startDate means
// now. EndDate is a flat days-per-period estimate kept for display,
// not the scheduling source of truth.
func (s *Service) CreateBox(ctx context.Context, plan *models.SubscriptionBoxPlan, userID string, quantity int, paymentMethodID string, startDate time.Time) (*models.SubscriptionBox, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if startDate.IsZero() {
		startDate = time.Now()
	}

	firstCycle := advance(startDate, plan.Frequency)

	box := &models.SubscriptionBox{
		ID:                 uuid.NewString(),
		PlanID:             plan.ID,
		UserID:             userID,
		Frequency:          plan.Frequency,
		Quantity:           quantity,
		PaymentMethodID:    paymentMethodID,
		Status:             models.BoxStatusActive,
		StartDate:          startDate,
		NextBillingDate:    firstCycle,
		NextShipmentDate:   firstCycle,
		ShipmentsCompleted: 0,
		ShipmentsRemaining: plan.Duration,
		CreatedAt:          time.Now(),
	}

	if plan.Duration != models.IndefiniteDuration {
		end := startDate.AddDate(0, 0, plan.Duration*periodDays[plan.Frequency])
		box.EndDate = &end
	}

	_ = ctx
	return box, nil
}

// ProcessNextShipment runs one billing cycle: it synthesizes the
// order and shipment records for the next shipment number, advances
// both schedule dates one period from their stored values, and
// decrements the remaining-shipment counter. A finite box whose last
// shipment this was flips to expired. The box is returned as a new
// value; the caller persists it.
func (s *Service) ProcessNextShipment(box *models.SubscriptionBox, pricing *PricingBreakdown) (*ShipmentResult, error) {
	if box.Status != models.BoxStatusActive {
		return nil, fmt.Errorf("%w: %s", ErrBoxNotActive, box.Status)
	}

	shipmentNumber := box.ShipmentsCompleted + 1
	now := time.Now()

	order := &models.SubscriptionOrder{
		ID:             uuid.NewString(),
		BoxID:          box.ID,
		UserID:         box.UserID,
		ShipmentNumber: shipmentNumber,
		Amount:         pricing.TotalPerShipment,
		Currency:       pricing.Currency,
		Status:         models.TransactionStatusCompleted,
		CreatedAt:      now,
	}

	shipment := &models.Shipment{
		ID:             uuid.NewString(),
		BoxID:          box.ID,
		OrderID:        order.ID,
		ShipmentNumber: shipmentNumber,
		Status:         "scheduled",
		ScheduledDate:  box.NextShipmentDate,
		CreatedAt:      now,
	}

	updated := *box
	updated.NextBillingDate = advance(box.NextBillingDate, box.Frequency)
	updated.NextShipmentDate = advance(box.NextShipmentDate, box.Frequency)
	updated.ShipmentsCompleted = shipmentNumber

	if updated.ShipmentsRemaining != models.IndefiniteDuration {
		if updated.ShipmentsRemaining == 1 {
			updated.Status = models.BoxStatusExpired
		}
		updated.ShipmentsRemaining--
	}
	updated.UpdatedAt = now

	return &ShipmentResult{
		Order:      order,
		Shipment:   shipment,
		UpdatedBox: &updated,
	}, nil
}

// advance moves a date forward one period. Month-based frequencies
// use real calendar months; weekly frequencies use day counts.
func advance(t time.Time, frequency string) time.Time {
	if months, ok := periodMonths[frequency]; ok {
		return t.AddDate(0, months, 0)
	}
	return t.AddDate(0, 0, periodDays[frequency])
}
