package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"bdn/internal/models"
	"bdn/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSubscriptionRepo struct {
	mock.Mock
}

func (m *MockSubscriptionRepo) GetActive(ctx context.Context, subscriberID, subscriberType string) (*models.BDNPlusSubscription, error) {
	args := m.Called(ctx, subscriberID, subscriberType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BDNPlusSubscription), args.Error(1)
}

func (m *MockSubscriptionRepo) Upsert(ctx context.Context, sub *models.BDNPlusSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepo) Cancel(ctx context.Context, subscriberID, subscriberType string) error {
	args := m.Called(ctx, subscriberID, subscriberType)
	return args.Error(0)
}

type MockStatusCache struct {
	mock.Mock
}

func (m *MockStatusCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func bdnPlusApp(repo repositories.SubscriptionRepository, cache statusCache, claims *models.UserClaims) *fiber.App {
	h := NewBDNPlusHandler(repo, cache)
	app := fiber.New()
	app.Post("/bdn-plus", withClaims(claims), h.Enroll)
	app.Delete("/bdn-plus", withClaims(claims), h.Cancel)
	return app
}

func TestBDNPlusEnroll_Consumer(t *testing.T) {
	repo := new(MockSubscriptionRepo)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(sub *models.BDNPlusSubscription) bool {
		return sub.SubscriberID == "user-1" &&
			sub.SubscriberType == "consumer" &&
			sub.Tier == models.TierBDNPlus &&
			sub.Status == models.SubscriptionStatusActive
	})).Return(nil)

	cache := new(MockStatusCache)
	cache.On("Delete", mock.Anything, []string{"bdnplus:consumer:user-1"}).Return(nil)

	app := bdnPlusApp(repo, cache, &models.UserClaims{UserID: "user-1"})

	status, err := postJSON(app, "/bdn-plus", `{}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, status)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestBDNPlusEnroll_BusinessTier(t *testing.T) {
	repo := new(MockSubscriptionRepo)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(sub *models.BDNPlusSubscription) bool {
		return sub.SubscriberType == "business" && sub.Tier == models.TierBDNPlusBusiness
	})).Return(nil)

	cache := new(MockStatusCache)
	cache.On("Delete", mock.Anything, mock.Anything).Return(nil)

	app := bdnPlusApp(repo, cache, &models.UserClaims{UserID: "biz-1"})

	status, err := postJSON(app, "/bdn-plus", `{"subscriber_type":"business"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, status)
	repo.AssertExpectations(t)
}

func TestBDNPlusEnroll_UnknownSubscriberType(t *testing.T) {
	repo := new(MockSubscriptionRepo)
	app := bdnPlusApp(repo, nil, &models.UserClaims{UserID: "user-1"})

	status, err := postJSON(app, "/bdn-plus", `{"subscriber_type":"charity"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, status)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestBDNPlusCancel(t *testing.T) {
	repo := new(MockSubscriptionRepo)
	repo.On("Cancel", mock.Anything, "user-1", "consumer").Return(nil)

	cache := new(MockStatusCache)
	cache.On("Delete", mock.Anything, []string{"bdnplus:consumer:user-1"}).Return(nil)

	app := bdnPlusApp(repo, cache, &models.UserClaims{UserID: "user-1"})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/bdn-plus", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestBDNPlusCancel_NotFound(t *testing.T) {
	repo := new(MockSubscriptionRepo)
	repo.On("Cancel", mock.Anything, "user-1", "consumer").Return(repositories.ErrSubscriptionNotFound)

	app := bdnPlusApp(repo, nil, &models.UserClaims{UserID: "user-1"})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/bdn-plus", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
