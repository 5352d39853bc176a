package card

import (
	"context"
	"testing"

	"bdn/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, pm *models.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*models.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

func (m *MockRepository) GetByUser(ctx context.Context, userID string) ([]*models.PaymentMethod, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PaymentMethod), args.Error(1)
}

func TestTokenize_TestTokenPassthrough(t *testing.T) {
	tok, err := Tokenize(models.CreateCardInput{
		CardNumber:  "tok_visa",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok_visa", tok.Token)
	assert.Equal(t, "Visa", tok.CardType)
	assert.Equal(t, "12/2030", tok.Expiry)
}

func TestTokenize_InvalidCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
	}{
		{"too short", "4242"},
		{"fails luhn", "4242424242424241"},
		{"non-digit characters", "4242-4242-4242-4242"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(models.CreateCardInput{
				CardNumber:  tt.number,
				ExpiryMonth: "12",
				ExpiryYear:  "2030",
			})
			assert.ErrorIs(t, err, ErrInvalidCardNumber)
		})
	}
}

func TestTokenize_PastExpiry(t *testing.T) {
	_, err := Tokenize(models.CreateCardInput{
		CardNumber:  "4242424242424242",
		ExpiryMonth: "1",
		ExpiryYear:  "2020",
	})
	assert.ErrorIs(t, err, ErrInvalidExpiry)
}

func TestLuhnValid(t *testing.T) {
	assert.True(t, luhnValid("4242424242424242"))
	assert.True(t, luhnValid("5555555555554444"))
	assert.False(t, luhnValid("4242424242424241"))
	assert.False(t, luhnValid("1234"))
}

func TestAddCard_StoresTokenizedMethod(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(pm *models.PaymentMethod) bool {
		return pm.UserID == "user-1" &&
			pm.Token == "tok_mastercard" &&
			pm.CardType == "Mastercard" &&
			pm.LastFour == ""
	})).Return(nil)

	svc := NewService(repo)

	pm, err := svc.AddCard(context.Background(), "user-1", models.CreateCardInput{
		CardNumber:  "tok_mastercard",
		ExpiryMonth: "6",
		ExpiryYear:  "2031",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pm.ID)
	assert.Equal(t, "stripe", pm.Provider)
	repo.AssertExpectations(t)
}

func TestAddCard_InvalidCardNeverStored(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	_, err := svc.AddCard(context.Background(), "user-1", models.CreateCardInput{
		CardNumber:  "4242424242424241",
		ExpiryMonth: "6",
		ExpiryYear:  "2031",
	})
	assert.ErrorIs(t, err, ErrInvalidCardNumber)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
