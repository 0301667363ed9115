package settlement

import "errors"

var (
	ErrInvalidPeriod         = errors.New("period_start must be <= period_end")
	ErrSettlementNotFound    = errors.New("settlement not found")
	ErrRemittanceNotFound    = errors.New("remittance not found")
	ErrRemittanceNotPending  = errors.New("remittance is not pending")
	ErrRemittanceAlreadyPaid = errors.New("remittance already paid")
)
