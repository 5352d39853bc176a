// Package card tokenizes payment cards through Stripe and stores the
// resulting payment methods. Subscription boxes reference the stored
// payment method ID for recurring billing.
package card

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bdn/internal/config"
	"bdn/internal/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/token"
)

var (
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrInvalidExpiry     = errors.New("invalid or past expiry date")
	ErrTokenization      = errors.New("card tokenization failed")
)

// Repository persists tokenized payment methods.
type Repository interface {
	Create(ctx context.Context, pm *models.PaymentMethod) error
	GetByID(ctx context.Context, id string) (*models.PaymentMethod, error)
	GetByUser(ctx context.Context, userID string) ([]*models.PaymentMethod, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	if repo == nil {
		panic("payment method repository is required")
	}
	stripe.Key = config.GetEnv("STRIPE_SECRET_KEY", "")
	return &Service{repo: repo}
}

// AddCard tokenizes a card and stores the resulting payment method
// for the user. The raw number is discarded after tokenization.
func (s *Service) AddCard(ctx context.Context, userID string, input models.CreateCardInput) (*models.PaymentMethod, error) {
	tok, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	pm := &models.PaymentMethod{
		ID:       uuid.NewString(),
		UserID:   userID,
		Provider: "stripe",
		Token:    tok.Token,
		CardType: tok.CardType,
		LastFour: lastFour(input.CardNumber),
		Expiry:   tok.Expiry,
		Status:   "active",
	}

	if err := s.repo.Create(ctx, pm); err != nil {
		return nil, fmt.Errorf("failed to store payment method: %w", err)
	}
	return pm, nil
}

// GetPaymentMethod looks up a stored payment method by ID.
func (s *Service) GetPaymentMethod(ctx context.Context, id string) (*models.PaymentMethod, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPaymentMethods returns the user's stored payment methods.
func (s *Service) ListPaymentMethods(ctx context.Context, userID string) ([]*models.PaymentMethod, error) {
	return s.repo.GetByUser(ctx, userID)
}

// Tokenize exchanges card details for a gateway token. Stripe test
// tokens (tok_...) pass through untouched so local development works
// without hitting the gateway.
func Tokenize(input models.CreateCardInput) (*models.CardToken, error) {
	if strings.HasPrefix(input.CardNumber, "tok_") {
		cardType := "Unknown"
		switch input.CardNumber {
		case "tok_visa":
			cardType = "Visa"
		case "tok_mastercard":
			cardType = "Mastercard"
		case "tok_amex":
			cardType = "American Express"
		case "tok_discover":
			cardType = "Discover"
		}
		return &models.CardToken{
			Token:    input.CardNumber,
			CardType: cardType,
			Expiry:   fmt.Sprintf("%s/%s", input.ExpiryMonth, input.ExpiryYear),
		}, nil
	}

	if !luhnValid(input.CardNumber) {
		return nil, ErrInvalidCardNumber
	}

	month, _ := strconv.Atoi(input.ExpiryMonth)
	year, _ := strconv.Atoi(input.ExpiryYear)
	if !validExpiry(month, year) {
		return nil, ErrInvalidExpiry
	}

	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   &input.CardNumber,
			ExpMonth: &input.ExpiryMonth,
			ExpYear:  &input.ExpiryYear,
		},
	}

	stripeToken, err := token.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenization, err)
	}

	return &models.CardToken{
		Token:    stripeToken.ID,
		CardType: string(stripeToken.Card.Brand),
		Expiry:   fmt.Sprintf("%s/%s", input.ExpiryMonth, input.ExpiryYear),
	}, nil
}

// luhnValid runs the Luhn checksum over a card number.
func luhnValid(cardNumber string) bool {
	if len(cardNumber) < 12 {
		return false
	}

	var sum int
	shouldDouble := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		if cardNumber[i] < '0' || cardNumber[i] > '9' {
			return false
		}
		digit := int(cardNumber[i] - '0')
		if shouldDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		shouldDouble = !shouldDouble
	}
	return sum%10 == 0
}

func validExpiry(month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	currentYear, currentMonth, _ := time.Now().Date()
	if year < currentYear || (year == currentYear && month < int(currentMonth)) {
		return false
	}
	return true
}

func lastFour(cardNumber string) string {
	if strings.HasPrefix(cardNumber, "tok_") || len(cardNumber) < 4 {
		return ""
	}
	return cardNumber[len(cardNumber)-4:]
}
