package fee

import (
	"context"
	"testing"
	"time"

	"bdn/internal/services/currency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warmedCalculator(t *testing.T) *Calculator {
	t.Helper()
	conv := currency.NewConverter(nil, currency.NewRateCache(time.Hour))
	require.NoError(t, conv.Warm(context.Background()))
	return NewCalculator(conv)
}

func TestConsumerServiceFee_BDNPlusWaived(t *testing.T) {
	calc := warmedCalculator(t)

	for _, amount := range []float64{0, 1, 5, 100, 1000, 99999} {
		assert.Equal(t, 0.0, calc.ConsumerServiceFee(amount, "USD", true))
		assert.Equal(t, 0.0, calc.ConsumerServiceFee(amount, "EUR", true))
	}
}

func TestConsumerServiceFee_USD(t *testing.T) {
	calc := warmedCalculator(t)

	tests := []struct {
		name   string
		amount float64
		want   float64
	}{
		{"clamped up to minimum", 5, 1.00},
		{"clamped down to maximum", 1000, 14.99},
		{"unclamped 10 percent", 100, 10.00},
		{"exactly at minimum", 10, 1.00},
		{"just under the cap", 149, 14.90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.ConsumerServiceFee(tt.amount, "USD", false))
		})
	}
}

func TestConsumerServiceFee_NonUSDClampsInLocalCurrency(t *testing.T) {
	calc := warmedCalculator(t)

	// 5 EUR: fee 0.50 EUR is about $0.54, under the $1.00 floor.
	// The floor converts back to EUR at 0.92/USD.
	assert.Equal(t, 0.92, calc.ConsumerServiceFee(5, "EUR", false))

	// 1000 EUR: fee 100 EUR is far over the $14.99 cap, which
	// converts back to 13.79 EUR.
	assert.Equal(t, 13.79, calc.ConsumerServiceFee(1000, "EUR", false))

	// 100 EUR: fee 10 EUR is about $10.87, inside the bounds.
	assert.Equal(t, 10.00, calc.ConsumerServiceFee(100, "EUR", false))
}

func TestConsumerServiceFee_NoRatesFallsBackToUSDBounds(t *testing.T) {
	// Cold cache: sync conversion reports no rates, so the local
	// amount is compared directly against the raw USD bounds.
	conv := currency.NewConverter(nil, currency.NewRateCache(time.Hour))
	calc := NewCalculator(conv)

	assert.Equal(t, 1.00, calc.ConsumerServiceFee(5, "EUR", false))
	assert.Equal(t, 14.99, calc.ConsumerServiceFee(1000, "EUR", false))
}

func TestConsumerServiceFee_UnknownCurrencyFallsThrough(t *testing.T) {
	calc := warmedCalculator(t)

	// Malformed codes never panic; the fee degrades to a raw
	// USD-bound comparison.
	assert.Equal(t, 10.00, calc.ConsumerServiceFee(100, "ZZZ", false))
	assert.Equal(t, 1.00, calc.ConsumerServiceFee(2, "ZZZ", false))
}

func TestBusinessFee(t *testing.T) {
	calc := warmedCalculator(t)

	assert.Equal(t, 20.00, calc.BusinessFee(200, "USD", false))
	assert.Equal(t, 10.00, calc.BusinessFee(200, "USD", true))

	// No clamp applies: large amounts keep the full percentage.
	assert.Equal(t, 1000.00, calc.BusinessFee(10000, "USD", false))
}

func TestFeeCalculations_Idempotent(t *testing.T) {
	calc := warmedCalculator(t)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 10.00, calc.ConsumerServiceFee(100, "USD", false))
		assert.Equal(t, 20.00, calc.BusinessFee(200, "USD", false))
		assert.Equal(t, 13.79, calc.ConsumerServiceFee(1000, "EUR", false))
	}
}

func TestConsumerTotalWithFee(t *testing.T) {
	calc := warmedCalculator(t)

	got := calc.ConsumerTotalWithFee(100, "USD", false)
	assert.Equal(t, TotalWithFee{Amount: 100, Fee: 10.00, Total: 110.00, Currency: "USD"}, got)

	waived := calc.ConsumerTotalWithFee(100, "USD", true)
	assert.Equal(t, 100.00, waived.Total)
	assert.Equal(t, 0.0, waived.Fee)
}

func TestBusinessNetAmount(t *testing.T) {
	calc := warmedCalculator(t)

	got := calc.BusinessNetAmount(200, "USD", true)
	assert.Equal(t, NetAmount{GrossAmount: 200, Fee: 10.00, NetAmount: 190.00, Currency: "USD"}, got)

	standard := calc.BusinessNetAmount(200, "USD", false)
	assert.Equal(t, 180.00, standard.NetAmount)
}

func TestNewCalculator_NilConverterDefaults(t *testing.T) {
	calc := NewCalculator(nil)
	assert.Equal(t, 10.00, calc.ConsumerServiceFee(100, "USD", false))
}
