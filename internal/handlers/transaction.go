package handlers

import (
	"errors"

	"bdn/internal/models"
	"bdn/internal/repositories"
	"bdn/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	transactions repositories.TransactionRepository
}

func NewTransactionHandler(txRepo repositories.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{transactions: txRepo}
}

// History returns the authenticated user's outgoing payments, newest
// first.
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	limit, offset := pagination(c)

	txs, err := h.transactions.GetByPayer(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return response.ServerError(c, "Failed to list transactions")
	}
	return response.Success(c, "Transactions", txs)
}

// EntityHistory returns payments received by a business or nonprofit.
// Only the entity itself or an admin can read it.
func (h *TransactionHandler) EntityHistory(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	entityID := c.Params("id")

	if entityID != claims.UserID && !claims.HasPermission(models.PermissionReadAdmin) {
		return response.Error(c, fiber.StatusForbidden, "Transactions belong to another entity")
	}

	limit, offset := pagination(c)
	txs, err := h.transactions.GetByEntity(c.Context(), entityID, limit, offset)
	if err != nil {
		return response.ServerError(c, "Failed to list transactions")
	}
	return response.Success(c, "Transactions", txs)
}

// Get returns one ledger record by its external reference ID. Only a
// party to the transaction or an admin can read it.
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	tx, err := h.transactions.GetByTransactionID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.ServerError(c, "Failed to load transaction")
	}

	party := tx.PayerID == claims.UserID || tx.PayeeID == claims.UserID || tx.EntityID == claims.UserID
	if !party && !claims.HasPermission(models.PermissionReadAdmin) {
		// Same response as a miss so strangers cannot enumerate IDs.
		return response.NotFound(c, "Transaction not found")
	}
	return response.Success(c, "Transaction", tx)
}

func pagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
