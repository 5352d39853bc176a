package subscriptionbox

import (
	"context"

	"bdn/internal/models"
)

// StatusProvider is the BDN+ lookup pricing depends on.
type StatusProvider interface {
	HasBDNPlus(ctx context.Context, userID string) (bool, error)
}

// PricingBreakdown is the per-shipment cost breakdown shown at
// checkout and billed each cycle.
type PricingBreakdown struct {
	PricePerShipment    float64 `json:"price_per_shipment"`
	ShippingPerShipment float64 `json:"shipping_per_shipment"`
	DiscountAmount      float64 `json:"discount_amount"`
	Subtotal            float64 `json:"subtotal"` // after discount
	ServiceFee          float64 `json:"service_fee"`
	TotalPerShipment    float64 `json:"total_per_shipment"`
	Currency            string  `json:"currency"`
	HasBDNPlus          bool    `json:"has_bdn_plus"`
}

// ShipmentResult carries the records synthesized for one billing
// cycle. UpdatedBox is a new value; the caller persists it.
type ShipmentResult struct {
	Order      *models.SubscriptionOrder `json:"order"`
	Shipment   *models.Shipment          `json:"shipment"`
	UpdatedBox *models.SubscriptionBox   `json:"updated_subscription"`
}
