package models

// Entity types that can receive marketplace payments
type EntityType string

const (
	EntityTypeBusiness  EntityType = "business"
	EntityTypeNonprofit EntityType = "nonprofit"
)

// FeePolicy defines one side of the marketplace fee structure.
// Rates are fractions, bounds are USD amounts. Bounds apply only
// when Clamped is set.
type FeePolicy struct {
	Rate           float64 `json:"rate"`
	DiscountedRate float64 `json:"discounted_rate"`
	MinFeeUSD      float64 `json:"min_fee_usd"`
	MaxFeeUSD      float64 `json:"max_fee_usd"`
	Clamped        bool    `json:"clamped"`
}

// Fee policy names
const (
	FeePolicyConsumerService  = "consumer_service"
	FeePolicyBusinessPlatform = "business_platform"
)

var FeePolicies = map[string]FeePolicy{
	FeePolicyConsumerService: {
		Rate:           0.10,  // 10% of order amount
		DiscountedRate: 0,     // waived entirely for BDN+ subscribers
		MinFeeUSD:      1.00,  // floor for small nonzero orders
		MaxFeeUSD:      14.99, // cap for large orders
		Clamped:        true,
	},
	FeePolicyBusinessPlatform: {
		Rate:           0.10, // 10% standard
		DiscountedRate: 0.05, // 5% with BDN+ Business
		Clamped:        false,
	},
}
