package payment

import (
	"context"
	"fmt"
	"time"

	"bdn/internal/models"
	"bdn/internal/services/fee"

	"github.com/google/uuid"
)

// StatusProvider is the subscription lookup the processor depends on.
type StatusProvider interface {
	HasBDNPlusBusiness(ctx context.Context, entityID, entityType string) (bool, error)
}

// LedgerRepository persists the synthesized transaction records.
type LedgerRepository interface {
	CreateBatch(ctx context.Context, txs []*models.Transaction) error
}

// Service orchestrates fee calculation into ledger records for a
// single payment event.
type Service struct {
	fees          *fee.Calculator
	subscriptions StatusProvider
	ledger        LedgerRepository
}

// NewService creates a payment processor. The ledger repository is
// optional: without one the service only synthesizes records and the
// caller owns persistence.
func NewService(fees *fee.Calculator, subscriptions StatusProvider, ledger LedgerRepository) *Service {
	if fees == nil {
		panic("fee calculator is required")
	}
	if subscriptions == nil {
		panic("subscription status provider is required")
	}
	return &Service{
		fees:          fees,
		subscriptions: subscriptions,
		ledger:        ledger,
	}
}

// ProcessBusinessPayment computes the platform fee for a payment to a
// business or nonprofit and synthesizes the ledger records for it:
// the consumer-side debit, the entity-side credit, and the
// platform-fee record. All records are created completed; there is no
// asynchronous settlement.
//
// Only nonprofits get an entity-side credit record. Businesses
// currently do not, and callers must not rely on EntityTransaction
// being set for them.
func (s *Service) ProcessBusinessPayment(ctx context.Context, req Request) (*Result, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	discounted, err := s.subscriptions.HasBDNPlusBusiness(ctx, req.EntityID, req.EntityType)
	if err != nil {
		return nil, fmt.Errorf("failed to check BDN+ Business status: %w", err)
	}

	breakdown := s.fees.BusinessNetAmount(req.GrossAmount, req.Currency, discounted)
	now := time.Now()
	// Timestamp alone collides for same-party payments within one
	// second; the fragment keeps the unique index happy.
	ref := uuid.NewString()[:8]

	txType := models.TransactionTypePayment
	if req.EntityType == string(models.EntityTypeNonprofit) {
		txType = models.TransactionTypeDonation
	}

	// Consumer-side debit. The consumer service fee is applied
	// upstream at checkout, not here.
	consumerTx := &models.Transaction{
		TransactionID: fmt.Sprintf("TX-%d-%s-%s", now.Unix(), req.UserID, ref),
		Type:          txType,
		Status:        models.TransactionStatusCompleted,
		PayerID:       req.UserID,
		PayeeID:       req.EntityID,
		EntityID:      req.EntityID,
		EntityType:    req.EntityType,
		Amount:        req.GrossAmount,
		Currency:      req.Currency,
		Fee:           0,
		FeeType:       models.FeeTypeNone,
		NetAmount:     req.GrossAmount,
		Description:   req.Description,
		Metadata:      req.Metadata,
	}

	var entityTx *models.Transaction
	if req.EntityType == string(models.EntityTypeNonprofit) {
		entityTx = &models.Transaction{
			TransactionID: fmt.Sprintf("TX-%d-%s-%s", now.Unix(), req.EntityID, ref),
			Type:          txType,
			Status:        models.TransactionStatusCompleted,
			PayerID:       req.UserID,
			PayeeID:       req.EntityID,
			EntityID:      req.EntityID,
			EntityType:    req.EntityType,
			Amount:        breakdown.NetAmount,
			Currency:      req.Currency,
			Fee:           breakdown.Fee,
			FeeType:       models.FeeTypePlatform,
			NetAmount:     breakdown.NetAmount,
			Description:   req.Description,
		}
	}

	feeTx := &models.Transaction{
		TransactionID: fmt.Sprintf("TX-%d-%s-%s-fee", now.Unix(), req.EntityID, ref),
		Type:          models.TransactionTypePlatformFee,
		Status:        models.TransactionStatusCompleted,
		PayerID:       models.PlatformAccountID,
		PayeeID:       models.PlatformAccountID,
		EntityID:      req.EntityID,
		EntityType:    req.EntityType,
		Amount:        breakdown.Fee,
		Currency:      req.Currency,
		Fee:           breakdown.Fee,
		FeeType:       models.FeeTypePlatform,
		NetAmount:     breakdown.Fee,
		Description:   fmt.Sprintf("Platform fee: %s", req.Description),
	}

	result := &Result{
		Transaction:            consumerTx,
		EntityTransaction:      entityTx,
		PlatformFeeTransaction: feeTx,
		FeeBreakdown: FeeBreakdown{
			GrossAmount: breakdown.GrossAmount,
			PlatformFee: breakdown.Fee,
			NetAmount:   breakdown.NetAmount,
			FeeRate:     feeRate(discounted),
			Discounted:  discounted,
			Currency:    req.Currency,
		},
	}

	if s.ledger != nil {
		txs := []*models.Transaction{consumerTx, feeTx}
		if entityTx != nil {
			txs = append(txs, entityTx)
		}
		if err := s.ledger.CreateBatch(ctx, txs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLedgerWrite, err)
		}
	}

	return result, nil
}

func (s *Service) validateRequest(req Request) error {
	if req.GrossAmount <= 0 {
		return ErrInvalidAmount
	}
	if req.UserID == "" || req.EntityID == "" {
		return ErrInvalidParties
	}
	switch req.EntityType {
	case string(models.EntityTypeBusiness), string(models.EntityTypeNonprofit):
		return nil
	default:
		return ErrInvalidEntityType
	}
}

func feeRate(discounted bool) float64 {
	policy := models.FeePolicies[models.FeePolicyBusinessPlatform]
	if discounted {
		return policy.DiscountedRate
	}
	return policy.Rate
}
