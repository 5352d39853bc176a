package handlers

import (
	"errors"

	"bdn/internal/models"
	"bdn/internal/services/fee"
	"bdn/internal/services/payment"
	"bdn/internal/utils/response"
	"bdn/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService *payment.Service
	feeCalculator  *fee.Calculator
}

func NewPaymentHandler(paymentSvc *payment.Service, feeCalc *fee.Calculator) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentSvc,
		feeCalculator:  feeCalc,
	}
}

// QuoteFees returns the fee breakdown for a prospective payment
// without creating any records.
func (h *PaymentHandler) QuoteFees(c *fiber.Ctx) error {
	var input struct {
		Amount             float64 `json:"amount"`
		Currency           string  `json:"currency"`
		HasBDNPlus         bool    `json:"has_bdn_plus"`
		HasBDNPlusBusiness bool    `json:"has_bdn_plus_business"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.PaymentAmount(input.Amount); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := validation.Currency(input.Currency); err != nil {
		return response.BadRequest(c, err.Error())
	}

	consumer := h.feeCalculator.ConsumerTotalWithFee(input.Amount, input.Currency, input.HasBDNPlus)
	business := h.feeCalculator.BusinessNetAmount(input.Amount, input.Currency, input.HasBDNPlusBusiness)

	return response.Success(c, "Fee quote", fiber.Map{
		"consumer": consumer,
		"business": business,
	})
}

// ProcessBusinessPayment records a payment from the authenticated
// consumer to a business or nonprofit.
func (h *PaymentHandler) ProcessBusinessPayment(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input struct {
		GrossAmount float64     `json:"gross_amount"`
		Currency    string      `json:"currency"`
		EntityID    string      `json:"entity_id"`
		EntityType  string      `json:"entity_type"`
		Description string      `json:"description"`
		Metadata    models.JSON `json:"metadata"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.PaymentAmount(input.GrossAmount); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := validation.Currency(input.Currency); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := validation.EntityType(input.EntityType); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.paymentService.ProcessBusinessPayment(c.Context(), payment.Request{
		GrossAmount: input.GrossAmount,
		Currency:    input.Currency,
		EntityID:    input.EntityID,
		EntityType:  input.EntityType,
		UserID:      claims.UserID,
		Description: input.Description,
		Metadata:    input.Metadata,
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount),
			errors.Is(err, payment.ErrInvalidParties),
			errors.Is(err, payment.ErrInvalidEntityType):
			return response.BadRequest(c, err.Error())
		default:
			// Ledger writes and status lookups failing are our
			// problem, not the caller's.
			return response.ServerError(c, "Failed to process payment")
		}
	}

	return response.Success(c, "Payment processed", result)
}
