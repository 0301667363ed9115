package response

import (
	"errors"
	"net/http"

	"github.com/worklogpay/settlement-backend-go/internal/domain/settlement"
	"github.com/worklogpay/settlement-backend-go/internal/domain/worklog"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Settlement domain errors
	case errors.Is(err, settlement.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")
	case errors.Is(err, settlement.ErrRemittanceNotFound):
		NotFound(w, "Remittance not found")
	case errors.Is(err, settlement.ErrRemittanceAlreadyPaid):
		Conflict(w, "Remittance already paid")
	case errors.Is(err, settlement.ErrRemittanceNotPending):
		Conflict(w, "Remittance is not pending")

	// Worklog domain errors
	case errors.Is(err, worklog.ErrWorkLogNotFound):
		NotFound(w, "Worklog not found")
	case errors.Is(err, worklog.ErrTimeSegmentNotFound):
		NotFound(w, "Time segment not found")
	case errors.Is(err, worklog.ErrTimeSegmentAlreadyDeleted):
		Conflict(w, "Time segment already deleted")

	// Default: storage failures and anything unexpected
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
