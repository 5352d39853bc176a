// Package validation holds request-level validation helpers shared by
// the HTTP handlers.
package validation

import (
	"fmt"

	"bdn/internal/models"
	"bdn/internal/services/currency"
)

const (
	MinPaymentAmount = 0.01
	MaxPaymentAmount = 1000000.00
)

// PaymentAmount checks an amount is within the accepted range.
func PaymentAmount(amount float64) error {
	if amount < MinPaymentAmount || amount > MaxPaymentAmount {
		return fmt.Errorf("amount must be between %.2f and %.2f", MinPaymentAmount, MaxPaymentAmount)
	}
	return nil
}

// Currency checks the code exists in the rate table. Unknown codes
// are rejected at the API edge even though the fee calculator itself
// degrades gracefully on them.
func Currency(code string) error {
	if code == "" {
		return fmt.Errorf("currency is required")
	}
	if !currency.IsSupported(code) {
		return fmt.Errorf("unsupported currency: %s", code)
	}
	return nil
}

// EntityType checks a payee entity type.
func EntityType(entityType string) error {
	switch entityType {
	case string(models.EntityTypeBusiness), string(models.EntityTypeNonprofit):
		return nil
	default:
		return fmt.Errorf("entity_type must be business or nonprofit")
	}
}
