package fee

// TotalWithFee is the consumer-side checkout breakdown.
type TotalWithFee struct {
	Amount   float64 `json:"amount"`
	Fee      float64 `json:"fee"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// NetAmount is the business-side payout breakdown.
type NetAmount struct {
	GrossAmount float64 `json:"gross_amount"`
	Fee         float64 `json:"fee"`
	NetAmount   float64 `json:"net_amount"`
	Currency    string  `json:"currency"`
}
