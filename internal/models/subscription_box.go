package models

import "time"

// Shipment frequencies for subscription boxes
const (
	FrequencyWeekly    = "weekly"
	FrequencyBiWeekly  = "bi-weekly"
	FrequencyMonthly   = "monthly"
	FrequencyBiMonthly = "bi-monthly"
	FrequencyQuarterly = "quarterly"
)

// Subscription box statuses
const (
	BoxStatusActive    = "active"
	BoxStatusCancelled = "cancelled"
	BoxStatusExpired   = "expired"
)

// IndefiniteDuration marks a plan that ships until cancelled.
const IndefiniteDuration = -1

// SubscriptionBoxPlan is the immutable template for a recurring
// shipment offering. Created once per product/frequency combination
// and never mutated afterwards.
type SubscriptionBoxPlan struct {
	ID                      string `gorm:"primarykey"`
	ProductID               string `gorm:"index;not null"`
	MerchantID              string `gorm:"index;not null"`
	Frequency               string `gorm:"not null"`
	Duration                int    `gorm:"not null"` // shipment count, -1 for indefinite
	PricePerShipment        float64
	ShippingCostPerShipment float64
	DiscountPercentage      float64
	Currency                string `gorm:"default:'USD'"`
	CreatedAt               time.Time
}

// SubscriptionBox binds a plan to a user and carries the mutable
// scheduling state advanced once per billing cycle.
type SubscriptionBox struct {
	ID                 string `gorm:"primarykey"`
	PlanID             string `gorm:"index;not null"`
	UserID             string `gorm:"index;not null"`
	Frequency          string `gorm:"not null"` // copied from the plan at creation
	Quantity           int    `gorm:"not null;default:1"`
	PaymentMethodID    string `gorm:"not null"`
	Status             string `gorm:"not null;default:'active'"`
	StartDate          time.Time
	NextBillingDate    time.Time `gorm:"index"`
	NextShipmentDate   time.Time
	EndDate            *time.Time // nil for indefinite plans
	ShipmentsCompleted int        `gorm:"default:0"`
	ShipmentsRemaining int        // -1 for indefinite
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SubscriptionOrder is the billing record synthesized for one shipment cycle.
type SubscriptionOrder struct {
	ID             string `gorm:"primarykey"`
	BoxID          string `gorm:"index;not null"`
	UserID         string `gorm:"index;not null"`
	ShipmentNumber int    `gorm:"not null"`
	Amount         float64
	Currency       string `gorm:"default:'USD'"`
	Status         string `gorm:"default:'completed'"`
	CreatedAt      time.Time
}

// Shipment is the fulfillment record paired with a SubscriptionOrder.
type Shipment struct {
	ID             string `gorm:"primarykey"`
	BoxID          string `gorm:"index;not null"`
	OrderID        string `gorm:"index;not null"`
	ShipmentNumber int    `gorm:"not null"`
	Status         string `gorm:"default:'scheduled'"`
	ScheduledDate  time.Time
	CreatedAt      time.Time
}
