package handlers

import (
	"bdn/internal/models"
	"bdn/internal/services/card"
	"bdn/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	cardService *card.Service
}

func NewCardHandler(cardSvc *card.Service) *CardHandler {
	return &CardHandler{cardService: cardSvc}
}

// AddCard tokenizes a card and stores it as a payment method for the
// authenticated user.
func (h *CardHandler) AddCard(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input models.CreateCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	pm, err := h.cardService.AddCard(c.Context(), claims.UserID, input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Payment method added", pm)
}

// ListCards returns the user's stored payment methods.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	pms, err := h.cardService.ListPaymentMethods(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to list payment methods")
	}
	return response.Success(c, "Payment methods", pms)
}
