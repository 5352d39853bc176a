package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypePayment         = "payment"
	TransactionTypeDonation        = "donation"
	TransactionTypePlatformFee     = "platform_fee"
	TransactionTypeSubscriptionBox = "subscription_box"
	TransactionTypeRefund          = "refund"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Fee types recorded on a transaction
const (
	FeeTypeService  = "service_fee"
	FeeTypePlatform = "platform_fee"
	FeeTypeNone     = "none"
)

// PlatformAccountID is the payer identity recorded on platform-fee
// transactions. It is not a real user account.
const PlatformAccountID = "platform"

// Transaction is an append-only ledger record. Rows are never updated
// after creation; corrections are written as new refund rows.
type Transaction struct {
	ID            uint   `gorm:"primarykey"`
	TransactionID string `gorm:"uniqueIndex;not null"` // External reference ID
	Type          string `gorm:"not null"`
	Status        string `gorm:"not null;default:'pending'"`
	PayerID       string `gorm:"index;not null"`
	PayeeID       string `gorm:"index"`
	EntityID      string `gorm:"index"`
	EntityType    string
	Amount        float64 `gorm:"not null"`
	Currency      string  `gorm:"default:'USD'"`
	Fee           float64 `gorm:"default:0"`
	FeeType       string  `gorm:"default:'none'"`
	NetAmount     float64
	Description   string
	Metadata      JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
