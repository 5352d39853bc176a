package handlers

import (
	"bdn/internal/services/currency"
	"bdn/internal/utils/response"
	"bdn/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CurrencyHandler struct {
	converter *currency.Converter
}

func NewCurrencyHandler(converter *currency.Converter) *CurrencyHandler {
	return &CurrencyHandler{converter: converter}
}

// Convert converts an amount between two currencies.
// GET /api/currency/convert?amount=100&from=USD&to=EUR
func (h *CurrencyHandler) Convert(c *fiber.Ctx) error {
	amount := c.QueryFloat("amount")
	from := c.Query("from")
	to := c.Query("to")

	if amount < 0 {
		return response.BadRequest(c, "amount must be non-negative")
	}
	if err := validation.Currency(from); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := validation.Currency(to); err != nil {
		return response.BadRequest(c, err.Error())
	}

	converted, err := h.converter.Convert(c.Context(), amount, from, to)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Success(c, "Converted", fiber.Map{
		"amount":    amount,
		"from":      from,
		"to":        to,
		"converted": converted,
	})
}

// Currencies lists the supported currency codes.
func (h *CurrencyHandler) Currencies(c *fiber.Ctx) error {
	return response.Success(c, "Supported currencies", currency.SupportedCurrencies())
}
