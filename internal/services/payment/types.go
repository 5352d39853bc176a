package payment

import "bdn/internal/models"

// Request describes a single payment from a consumer to a business or
// nonprofit.
type Request struct {
	GrossAmount float64     `json:"gross_amount"`
	Currency    string      `json:"currency"`
	EntityID    string      `json:"entity_id"`
	EntityType  string      `json:"entity_type"` // business or nonprofit
	UserID      string      `json:"user_id"`
	Description string      `json:"description"`
	Metadata    models.JSON `json:"metadata,omitempty"`
}

// FeeBreakdown summarizes the platform-fee math for a payment.
type FeeBreakdown struct {
	GrossAmount float64 `json:"gross_amount"`
	PlatformFee float64 `json:"platform_fee"`
	NetAmount   float64 `json:"net_amount"`
	FeeRate     float64 `json:"fee_rate"`
	Discounted  bool    `json:"discounted"`
	Currency    string  `json:"currency"`
}

// Result carries the synthesized ledger records for one payment.
// EntityTransaction is nil for business payees.
type Result struct {
	Transaction            *models.Transaction `json:"transaction"`
	EntityTransaction      *models.Transaction `json:"entity_transaction"`
	PlatformFeeTransaction *models.Transaction `json:"platform_fee_transaction"`
	FeeBreakdown           FeeBreakdown        `json:"fee_breakdown"`
}
