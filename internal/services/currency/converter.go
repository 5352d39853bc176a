// Package currency converts money amounts between currencies using a
// USD-based rate table. Rates come from a RateSource and are held in
// an injectable TTL cache; the sync conversion path never fetches and
// reports ok=false when no rates are cached yet, leaving the fallback
// decision to the caller.
package currency

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrNoRates         = errors.New("no exchange rates available")
)

// RateSource supplies a fresh rate table keyed by currency code, in
// units per USD.
type RateSource interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// StaticRateSource serves the built-in mock rate table.
type StaticRateSource struct{}

func (StaticRateSource) FetchRates(_ context.Context) (map[string]float64, error) {
	rates := make(map[string]float64, len(mockExchangeRates))
	for code, rate := range mockExchangeRates {
		rates[code] = rate
	}
	return rates, nil
}

// Converter converts amounts between currencies via the USD base.
type Converter struct {
	source RateSource
	cache  *RateCache
}

// NewConverter creates a converter. A nil source falls back to the
// static mock table, a nil cache gets a fresh one-hour cache.
func NewConverter(source RateSource, cache *RateCache) *Converter {
	if source == nil {
		source = StaticRateSource{}
	}
	if cache == nil {
		cache = NewRateCache(DefaultCacheTTL)
	}
	return &Converter{source: source, cache: cache}
}

// Convert converts amount from one currency to another, refreshing
// the rate cache when stale. The result is rounded to 2 decimals.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}

	rates, ok := c.cache.Get()
	if !ok {
		fresh, err := c.source.FetchRates(ctx)
		if err != nil {
			return 0, fmt.Errorf("fetch exchange rates: %w", err)
		}
		c.cache.Set(fresh)
		rates = fresh
	}

	return convert(amount, from, to, rates)
}

// ConvertSync converts using cached rates only, or caller-supplied
// rates when given. It returns ok=false when no rates are available
// yet or a code is unknown; callers fall back to unconverted values.
func (c *Converter) ConvertSync(amount float64, from, to string, rates ...map[string]float64) (float64, bool) {
	if from == to {
		return amount, true
	}

	table, ok := c.cache.Get()
	if len(rates) > 0 && rates[0] != nil {
		table, ok = rates[0], true
	}
	if !ok {
		return 0, false
	}

	converted, err := convert(amount, from, to, table)
	if err != nil {
		return 0, false
	}
	return converted, true
}

// Warm populates the rate cache so subsequent ConvertSync calls have
// rates to work with.
func (c *Converter) Warm(ctx context.Context) error {
	fresh, err := c.source.FetchRates(ctx)
	if err != nil {
		return fmt.Errorf("fetch exchange rates: %w", err)
	}
	c.cache.Set(fresh)
	return nil
}

// convert pivots through USD: amount -> USD -> target.
func convert(amount float64, from, to string, rates map[string]float64) (float64, error) {
	fromRate, ok := rates[from]
	if !ok || fromRate == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}

	usd := amount / fromRate
	return Round2(usd * toRate), nil
}

// Round2 rounds a money amount to 2 decimal places. Every percentage
// or conversion result passes through this before leaving the package.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
