package handlers

import (
	"errors"
	"time"

	"bdn/internal/models"
	"bdn/internal/repositories"
	"bdn/internal/services/subscriptionbox"
	"bdn/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type SubscriptionBoxHandler struct {
	boxService *subscriptionbox.Service
	boxRepo    repositories.SubscriptionBoxRepository
	products   repositories.ProductRepository
}

func NewSubscriptionBoxHandler(
	boxSvc *subscriptionbox.Service,
	boxRepo repositories.SubscriptionBoxRepository,
	products repositories.ProductRepository,
) *SubscriptionBoxHandler {
	return &SubscriptionBoxHandler{
		boxService: boxSvc,
		boxRepo:    boxRepo,
		products:   products,
	}
}

// CreatePlan creates a subscription box plan for one of the
// merchant's products.
func (h *SubscriptionBoxHandler) CreatePlan(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input struct {
		ProductID          string  `json:"product_id"`
		Frequency          string  `json:"frequency"`
		Duration           int     `json:"duration"`
		DiscountPercentage float64 `json:"discount_percentage"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	product, err := h.products.GetByID(c.Context(), input.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return response.NotFound(c, "Product not found")
		}
		return response.ServerError(c, "Failed to load product")
	}
	if product.MerchantID != claims.UserID && !claims.HasPermission(models.PermissionWriteAdmin) {
		return response.Error(c, fiber.StatusForbidden, "Product belongs to another merchant")
	}

	plan, err := h.boxService.CreatePlan(product, input.Frequency, input.Duration, input.DiscountPercentage)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.boxRepo.CreatePlan(c.Context(), plan); err != nil {
		return response.ServerError(c, "Failed to save plan")
	}

	return response.Created(c, "Plan created", plan)
}

// QuotePricing returns the per-shipment pricing breakdown for a plan
// and quantity.
func (h *SubscriptionBoxHandler) QuotePricing(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input struct {
		PlanID   string `json:"plan_id"`
		Quantity int    `json:"quantity"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	plan, err := h.boxRepo.GetPlan(c.Context(), input.PlanID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return response.NotFound(c, "Plan not found")
		}
		return response.ServerError(c, "Failed to load plan")
	}

	pricing, err := h.boxService.CalculatePricing(c.Context(), plan, input.Quantity, claims.UserID)
	if err != nil {
		if errors.Is(err, subscriptionbox.ErrInvalidQuantity) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to calculate pricing")
	}

	return response.Success(c, "Pricing", pricing)
}

// ListPlans returns the authenticated merchant's subscription box
// plans.
func (h *SubscriptionBoxHandler) ListPlans(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	plans, err := h.boxRepo.GetPlansByMerchant(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to list plans")
	}
	return response.Success(c, "Plans", plans)
}

// Subscribe creates a subscription box for the authenticated user.
func (h *SubscriptionBoxHandler) Subscribe(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input struct {
		PlanID          string     `json:"plan_id"`
		Quantity        int        `json:"quantity"`
		PaymentMethodID string     `json:"payment_method_id"`
		StartDate       *time.Time `json:"start_date"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.PaymentMethodID == "" {
		return response.BadRequest(c, "payment_method_id is required")
	}

	plan, err := h.boxRepo.GetPlan(c.Context(), input.PlanID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return response.NotFound(c, "Plan not found")
		}
		return response.ServerError(c, "Failed to load plan")
	}

	start := time.Time{}
	if input.StartDate != nil {
		start = *input.StartDate
	}

	box, err := h.boxService.CreateBox(c.Context(), plan, claims.UserID, input.Quantity, input.PaymentMethodID, start)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.boxRepo.CreateBox(c.Context(), box); err != nil {
		return response.ServerError(c, "Failed to save subscription box")
	}

	return response.Created(c, "Subscription box created", box)
}

// ListBoxes returns the authenticated user's subscription boxes.
func (h *SubscriptionBoxHandler) ListBoxes(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	boxes, err := h.boxRepo.GetBoxesByUser(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to list subscription boxes")
	}
	return response.Success(c, "Subscription boxes", boxes)
}

// ProcessShipment runs one billing cycle for a box: it prices the
// shipment, synthesizes the order and shipment records, and persists
// the advanced schedule. Only the box owner or an admin can trigger
// it.
func (h *SubscriptionBoxHandler) ProcessShipment(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	boxID := c.Params("id")

	box, err := h.boxRepo.GetBox(c.Context(), boxID)
	if err != nil {
		if errors.Is(err, repositories.ErrBoxNotFound) {
			return response.NotFound(c, "Subscription box not found")
		}
		return response.ServerError(c, "Failed to load subscription box")
	}
	if box.UserID != claims.UserID && !claims.HasPermission(models.PermissionWriteAdmin) {
		return response.Error(c, fiber.StatusForbidden, "Subscription box belongs to another user")
	}

	plan, err := h.boxRepo.GetPlan(c.Context(), box.PlanID)
	if err != nil {
		return response.ServerError(c, "Failed to load plan")
	}

	pricing, err := h.boxService.CalculatePricing(c.Context(), plan, box.Quantity, box.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to calculate pricing")
	}

	result, err := h.boxService.ProcessNextShipment(box, pricing)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.boxRepo.SaveCycle(c.Context(), result.UpdatedBox, result.Order, result.Shipment); err != nil {
		return response.ServerError(c, "Failed to save billing cycle")
	}

	return response.Success(c, "Shipment processed", result)
}
