package models

import "time"

// PaymentMethod is a tokenized card on file. Raw card numbers are
// never stored; only the gateway token and display fields are kept.
type PaymentMethod struct {
	ID        string `gorm:"primarykey"`
	UserID    string `gorm:"index;not null"`
	Provider  string `gorm:"default:'stripe'"`
	Token     string `gorm:"not null"`
	CardType  string
	LastFour  string
	Expiry    string // MM/YYYY
	IsDefault bool   `gorm:"default:false"`
	Status    string `gorm:"default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateCardInput is the request body for adding a payment method.
type CreateCardInput struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
}

// CardToken is the tokenization result returned by the gateway.
type CardToken struct {
	Token    string `json:"token"`
	Expiry   string `json:"expiry"`
	CardType string `json:"card_type"`
}
