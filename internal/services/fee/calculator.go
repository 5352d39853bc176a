package fee

import (
	"bdn/internal/models"
	"bdn/internal/services/currency"
)

// Calculator computes marketplace fees. It is stateless apart from
// the currency converter and safe for concurrent use.
type Calculator struct {
	converter *currency.Converter
}

// NewCalculator creates a fee calculator. A nil converter falls back
// to one backed by the static rate table.
func NewCalculator(converter *currency.Converter) *Calculator {
	if converter == nil {
		converter = currency.NewConverter(nil, nil)
	}
	return &Calculator{converter: converter}
}

// ConsumerServiceFee returns the service fee charged to the paying
// consumer on top of an order or donation amount.
//
// BDN+ subscribers pay no service fee. Everyone else pays 10%,
// clamped to [$1.00, $14.99] in USD-equivalent terms. For non-USD
// currencies the fee is converted to USD for the bound check and the
// violated bound is converted back into the original currency; when
// no rates are available the raw USD bound is used as-is.
func (c *Calculator) ConsumerServiceFee(amount float64, curr string, hasBDNPlus bool) float64 {
	if hasBDNPlus {
		return 0
	}

	policy := models.FeePolicies[models.FeePolicyConsumerService]
	feeAmt := amount * policy.Rate

	if curr == currency.USDCurrency {
		return currency.Round2(clamp(feeAmt, policy.MinFeeUSD, policy.MaxFeeUSD))
	}

	feeUSD, ok := c.converter.ConvertSync(feeAmt, curr, currency.USDCurrency)
	if !ok {
		// No rates cached or unrecognized code: compare the local
		// amount against the raw USD bounds.
		return currency.Round2(clamp(feeAmt, policy.MinFeeUSD, policy.MaxFeeUSD))
	}

	switch {
	case feeUSD < policy.MinFeeUSD:
		feeAmt = c.localBound(policy.MinFeeUSD, curr)
	case feeUSD > policy.MaxFeeUSD:
		feeAmt = c.localBound(policy.MaxFeeUSD, curr)
	}
	return currency.Round2(feeAmt)
}

// BusinessFee returns the platform fee deducted from the amount a
// business or nonprofit receives: 10% standard, 5% with BDN+
// Business. No min/max clamp applies.
func (c *Calculator) BusinessFee(amount float64, curr string, hasBDNPlusBusiness bool) float64 {
	policy := models.FeePolicies[models.FeePolicyBusinessPlatform]
	rate := policy.Rate
	if hasBDNPlusBusiness {
		rate = policy.DiscountedRate
	}
	_ = curr // platform fee is a flat percentage in any currency
	return currency.Round2(amount * rate)
}

// ConsumerTotalWithFee returns the display breakdown for a consumer
// checkout: order amount, service fee, and total charged.
func (c *Calculator) ConsumerTotalWithFee(amount float64, curr string, hasBDNPlus bool) TotalWithFee {
	feeAmt := c.ConsumerServiceFee(amount, curr, hasBDNPlus)
	return TotalWithFee{
		Amount:   amount,
		Fee:      feeAmt,
		Total:    currency.Round2(amount + feeAmt),
		Currency: curr,
	}
}

// BusinessNetAmount returns the display breakdown for a receiving
// business or nonprofit: gross, platform fee, and net paid out.
func (c *Calculator) BusinessNetAmount(grossAmount float64, curr string, hasBDNPlusBusiness bool) NetAmount {
	feeAmt := c.BusinessFee(grossAmount, curr, hasBDNPlusBusiness)
	return NetAmount{
		GrossAmount: grossAmount,
		Fee:         feeAmt,
		NetAmount:   currency.Round2(grossAmount - feeAmt),
		Currency:    curr,
	}
}

// localBound converts a USD fee bound into the transaction currency,
// falling back to the raw USD value when conversion fails.
func (c *Calculator) localBound(boundUSD float64, curr string) float64 {
	if local, ok := c.converter.ConvertSync(boundUSD, currency.USDCurrency, curr); ok {
		return local
	}
	return boundUSD
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
