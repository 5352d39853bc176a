package currency

// USDCurrency is the base currency of the rate table. Every
// conversion pivots through it.
const USDCurrency = "USD"

// mockExchangeRates maps currency codes to units per USD. This stands
// in for a real rate feed until one is integrated; BLKD is the
// platform token, pegged 1:1 to USD.
var mockExchangeRates = map[string]float64{
	"USD":  1.0,
	"BLKD": 1.0,
	"EUR":  0.92,
	"GBP":  0.79,
	"JPY":  149.50,
	"CAD":  1.36,
	"AUD":  1.52,
	"CHF":  0.88,
	"CNY":  7.24,
	"INR":  83.12,
	"KRW":  1318.40,
	"BRL":  4.97,
	"MXN":  17.15,
	"SGD":  1.34,
	"HKD":  7.82,
	"NZD":  1.64,
	"SEK":  10.42,
	"NOK":  10.51,
	"DKK":  6.86,
	"PLN":  4.02,
	"CZK":  22.64,
	"HUF":  352.80,
	"RON":  4.57,
	"ZAR":  18.72,
	"TRY":  30.25,
	"AED":  3.67,
	"SAR":  3.75,
	"ILS":  3.66,
	"THB":  35.48,
	"PHP":  55.90,
	"IDR":  15612.0,
	"MYR":  4.72,
	"VND":  24380.0,
	"NGN":  1435.0,
	"KES":  157.30,
	"GHS":  12.40,
	"EGP":  30.90,
	"COP":  3921.0,
	"ARS":  823.50,
	"CLP":  913.60,
}

// SupportedCurrencies returns the codes present in the rate table.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(mockExchangeRates))
	for code := range mockExchangeRates {
		codes = append(codes, code)
	}
	return codes
}

// IsSupported reports whether a currency code exists in the rate table.
func IsSupported(code string) bool {
	_, ok := mockExchangeRates[code]
	return ok
}
