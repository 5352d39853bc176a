package handlers

import (
	"context"
	"errors"

	"bdn/internal/models"
	"bdn/internal/repositories"
	"bdn/internal/services/subscription"
	"bdn/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// statusCache is the slice of the cache service membership writes
// need: stale status entries must go when a tier changes.
type statusCache interface {
	Delete(ctx context.Context, keys ...string) error
}

type BDNPlusHandler struct {
	subscriptions repositories.SubscriptionRepository
	cache         statusCache
}

func NewBDNPlusHandler(subs repositories.SubscriptionRepository, cache statusCache) *BDNPlusHandler {
	return &BDNPlusHandler{subscriptions: subs, cache: cache}
}

// Enroll activates a BDN+ tier for the authenticated subscriber.
// Consumers get BDN+, businesses and nonprofits get BDN+ Business.
func (h *BDNPlusHandler) Enroll(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input struct {
		SubscriberType string `json:"subscriber_type"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.SubscriberType == "" {
		input.SubscriberType = subscription.SubscriberTypeConsumer
	}

	tier := models.TierBDNPlus
	switch input.SubscriberType {
	case subscription.SubscriberTypeConsumer:
	case subscription.SubscriberTypeBusiness, subscription.SubscriberTypeNonprofit:
		tier = models.TierBDNPlusBusiness
	default:
		return response.BadRequest(c, "subscriber_type must be consumer, business, or nonprofit")
	}

	sub := &models.BDNPlusSubscription{
		SubscriberID:   claims.UserID,
		SubscriberType: input.SubscriberType,
		Tier:           tier,
		Status:         models.SubscriptionStatusActive,
	}
	if err := h.subscriptions.Upsert(c.Context(), sub); err != nil {
		return response.ServerError(c, "Failed to activate subscription")
	}
	h.invalidate(c.Context(), claims.UserID, input.SubscriberType)

	return response.Created(c, "Subscription activated", sub)
}

// Cancel deactivates the authenticated subscriber's BDN+ tier.
func (h *BDNPlusHandler) Cancel(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	subscriberType := c.Query("subscriber_type", subscription.SubscriberTypeConsumer)

	err := h.subscriptions.Cancel(c.Context(), claims.UserID, subscriberType)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return response.NotFound(c, "No subscription to cancel")
		}
		return response.ServerError(c, "Failed to cancel subscription")
	}
	h.invalidate(c.Context(), claims.UserID, subscriberType)

	return response.Success(c, "Subscription cancelled", nil)
}

func (h *BDNPlusHandler) invalidate(ctx context.Context, subscriberID, subscriberType string) {
	if h.cache == nil {
		return
	}
	// Best effort; the entry also ages out on its TTL.
	_ = h.cache.Delete(ctx, subscription.CacheKey(subscriberID, subscriberType))
}
