package payment

import "errors"

// Service errors
var (
	ErrInvalidAmount     = errors.New("invalid payment amount")
	ErrInvalidParties    = errors.New("invalid payment parties")
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrLedgerWrite       = errors.New("failed to record transactions")
)
