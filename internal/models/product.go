package models

import "time"

// Product types
const (
	ProductTypePhysical = "physical"
	ProductTypeDigital  = "digital"
	ProductTypeService  = "service"
)

type Product struct {
	ID               string `gorm:"primarykey"`
	MerchantID       string `gorm:"index;not null"`
	Name             string `gorm:"not null"`
	Description      string
	ProductType      string  `gorm:"not null;default:'physical'"`
	Price            float64 `gorm:"not null"`
	Currency         string  `gorm:"default:'USD'"`
	ShippingRequired bool    `gorm:"default:false"`
	ShippingCost     float64 `gorm:"default:0"`
	Active           bool    `gorm:"default:true"`
	Metadata         JSON    `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
