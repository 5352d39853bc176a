package handlers

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"bdn/internal/models"
	"bdn/internal/services/currency"
	"bdn/internal/services/fee"
	"bdn/internal/services/subscription"
	"bdn/internal/services/subscriptionbox"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBoxRepo struct {
	mock.Mock
}

func (m *MockBoxRepo) CreatePlan(ctx context.Context, plan *models.SubscriptionBoxPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockBoxRepo) GetPlan(ctx context.Context, planID string) (*models.SubscriptionBoxPlan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionBoxPlan), args.Error(1)
}

func (m *MockBoxRepo) GetPlansByMerchant(ctx context.Context, merchantID string) ([]*models.SubscriptionBoxPlan, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriptionBoxPlan), args.Error(1)
}

func (m *MockBoxRepo) CreateBox(ctx context.Context, box *models.SubscriptionBox) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockBoxRepo) GetBox(ctx context.Context, boxID string) (*models.SubscriptionBox, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionBox), args.Error(1)
}

func (m *MockBoxRepo) GetBoxesByUser(ctx context.Context, userID string) ([]*models.SubscriptionBox, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriptionBox), args.Error(1)
}

func (m *MockBoxRepo) GetDueBoxes(ctx context.Context, asOf time.Time, limit int) ([]*models.SubscriptionBox, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriptionBox), args.Error(1)
}

func (m *MockBoxRepo) SaveCycle(ctx context.Context, box *models.SubscriptionBox, order *models.SubscriptionOrder, shipment *models.Shipment) error {
	args := m.Called(ctx, box, order, shipment)
	return args.Error(0)
}

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepo) GetByMerchant(ctx context.Context, merchantID string) ([]*models.Product, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

// withClaims injects claims the way the auth middleware would.
func withClaims(claims *models.UserClaims) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("claims", claims)
		return c.Next()
	}
}

func newBoxService(t *testing.T) *subscriptionbox.Service {
	t.Helper()
	conv := currency.NewConverter(nil, currency.NewRateCache(time.Hour))
	require.NoError(t, conv.Warm(context.Background()))
	return subscriptionbox.NewService(fee.NewCalculator(conv), subscription.NewStaticProvider())
}

func processShipmentApp(h *SubscriptionBoxHandler, claims *models.UserClaims) *fiber.App {
	app := fiber.New()
	app.Post("/subscription-boxes/:id/process", withClaims(claims), h.ProcessShipment)
	return app
}

func TestProcessShipment_RejectsForeignBox(t *testing.T) {
	boxRepo := new(MockBoxRepo)
	boxRepo.On("GetBox", mock.Anything, "box-1").Return(&models.SubscriptionBox{
		ID:     "box-1",
		UserID: "owner-1",
		Status: models.BoxStatusActive,
	}, nil)

	h := NewSubscriptionBoxHandler(newBoxService(t), boxRepo, new(MockProductRepo))
	app := processShipmentApp(h, &models.UserClaims{
		UserID:      "intruder-1",
		Permissions: []string{models.PermissionBoxWrite},
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/subscription-boxes/box-1/process", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Nothing gets billed for a box the caller does not own.
	boxRepo.AssertNotCalled(t, "SaveCycle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessShipment_OwnerAllowed(t *testing.T) {
	billing := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	boxRepo := new(MockBoxRepo)
	boxRepo.On("GetBox", mock.Anything, "box-1").Return(&models.SubscriptionBox{
		ID:                 "box-1",
		PlanID:             "plan-1",
		UserID:             "owner-1",
		Frequency:          models.FrequencyMonthly,
		Quantity:           1,
		Status:             models.BoxStatusActive,
		NextBillingDate:    billing,
		NextShipmentDate:   billing,
		ShipmentsRemaining: models.IndefiniteDuration,
	}, nil)
	boxRepo.On("GetPlan", mock.Anything, "plan-1").Return(&models.SubscriptionBoxPlan{
		ID:                      "plan-1",
		Frequency:               models.FrequencyMonthly,
		Duration:                models.IndefiniteDuration,
		PricePerShipment:        24.99,
		ShippingCostPerShipment: 4.99,
		Currency:                "USD",
	}, nil)
	boxRepo.On("SaveCycle", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	h := NewSubscriptionBoxHandler(newBoxService(t), boxRepo, new(MockProductRepo))
	app := processShipmentApp(h, &models.UserClaims{
		UserID:      "owner-1",
		Permissions: []string{models.PermissionBoxWrite},
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/subscription-boxes/box-1/process", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	boxRepo.AssertExpectations(t)
}

func TestProcessShipment_AdminAllowedOnForeignBox(t *testing.T) {
	billing := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	boxRepo := new(MockBoxRepo)
	boxRepo.On("GetBox", mock.Anything, "box-1").Return(&models.SubscriptionBox{
		ID:                 "box-1",
		PlanID:             "plan-1",
		UserID:             "owner-1",
		Frequency:          models.FrequencyWeekly,
		Quantity:           1,
		Status:             models.BoxStatusActive,
		NextBillingDate:    billing,
		NextShipmentDate:   billing,
		ShipmentsRemaining: models.IndefiniteDuration,
	}, nil)
	boxRepo.On("GetPlan", mock.Anything, "plan-1").Return(&models.SubscriptionBoxPlan{
		ID:               "plan-1",
		Frequency:        models.FrequencyWeekly,
		Duration:         models.IndefiniteDuration,
		PricePerShipment: 10,
		Currency:         "USD",
	}, nil)
	boxRepo.On("SaveCycle", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	h := NewSubscriptionBoxHandler(newBoxService(t), boxRepo, new(MockProductRepo))
	app := processShipmentApp(h, &models.UserClaims{
		UserID:      "ops-1",
		Permissions: []string{models.PermissionBoxWrite, models.PermissionWriteAdmin},
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/subscription-boxes/box-1/process", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListPlans(t *testing.T) {
	boxRepo := new(MockBoxRepo)
	boxRepo.On("GetPlansByMerchant", mock.Anything, "merchant-1").Return([]*models.SubscriptionBoxPlan{
		{ID: "plan-1", MerchantID: "merchant-1"},
		{ID: "plan-2", MerchantID: "merchant-1"},
	}, nil)

	h := NewSubscriptionBoxHandler(newBoxService(t), boxRepo, new(MockProductRepo))

	app := fiber.New()
	app.Get("/subscription-boxes/plans", withClaims(&models.UserClaims{UserID: "merchant-1"}), h.ListPlans)

	resp, err := app.Test(httptest.NewRequest("GET", "/subscription-boxes/plans", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	boxRepo.AssertExpectations(t)
}
