package subscriptionbox

import "errors"

// Service errors
var (
	ErrNotPhysical         = errors.New("subscription box plans require a physical product")
	ErrShippingNotRequired = errors.New("subscription box plans require a product with shipping")
	ErrInvalidFrequency    = errors.New("invalid shipment frequency")
	ErrInvalidDuration     = errors.New("invalid plan duration")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidDiscount     = errors.New("invalid discount percentage")
	ErrBoxNotActive        = errors.New("subscription box is not active")
)
