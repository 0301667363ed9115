package worklog

import (
	"github.com/shopspring/decimal"

	"github.com/worklogpay/settlement-backend-go/internal/pkg/validator"
)

// ========== WORKLOG DTOs ==========

type CreateWorkLogRequest struct {
	WorkerUserID   string `json:"worker_user_id"`
	TaskIdentifier string `json:"task_identifier"`
}

func (r *CreateWorkLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerUserID) {
		errs = append(errs, validator.ValidationError{Field: "worker_user_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.WorkerUserID) {
		errs = append(errs, validator.ValidationError{Field: "worker_user_id", Message: "must be a valid UUID"})
	}
	if validator.IsEmpty(r.TaskIdentifier) {
		errs = append(errs, validator.ValidationError{Field: "task_identifier", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkLogResponse struct {
	ID             string `json:"id"`
	WorkerUserID   string `json:"worker_user_id"`
	TaskIdentifier string `json:"task_identifier"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// ========== TIME SEGMENT DTOs ==========

type LogTimeSegmentRequest struct {
	WorklogID   string          `json:"-"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	SegmentDate string          `json:"segment_date"`
	Notes       *string         `json:"notes,omitempty"`
}

func (r *LogTimeSegmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.SegmentDate) {
		errs = append(errs, validator.ValidationError{Field: "segment_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.SegmentDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "segment_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeSegmentResponse struct {
	ID          string  `json:"id"`
	WorklogID   string  `json:"worklog_id"`
	HoursWorked string  `json:"hours_worked"`
	HourlyRate  string  `json:"hourly_rate"`
	GrossAmount string  `json:"gross_amount"`
	SegmentDate string  `json:"segment_date"`
	Notes       *string `json:"notes,omitempty"`
}

// ========== ADJUSTMENT DTOs ==========

type RecordAdjustmentRequest struct {
	WorklogID      string          `json:"-"`
	AdjustmentType string          `json:"adjustment_type"`
	Amount         decimal.Decimal `json:"amount"`
	Reason         *string         `json:"reason,omitempty"`
}

func (r *RecordAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AdjustmentType != string(AdjustmentTypeAddition) && r.AdjustmentType != string(AdjustmentTypeDeduction) {
		errs = append(errs, validator.ValidationError{Field: "adjustment_type", Message: "must be 'ADDITION' or 'DEDUCTION'"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentResponse struct {
	ID             string  `json:"id"`
	WorklogID      string  `json:"worklog_id"`
	AdjustmentType string  `json:"adjustment_type"`
	Amount         string  `json:"amount"`
	Reason         *string `json:"reason,omitempty"`
}

// ========== LISTING DTOs ==========

// RemittanceStatusFilter values accepted by the listing endpoint.
const (
	RemittanceStatusRemitted   = "REMITTED"
	RemittanceStatusUnremitted = "UNREMITTED"
)

type ListWorkLogsQuery struct {
	Skip             int
	Limit            int
	RemittanceStatus *string
}

func (q *ListWorkLogsQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.Skip < 0 {
		errs = append(errs, validator.ValidationError{Field: "skip", Message: "must be non-negative"})
	}
	if q.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "must be non-negative"})
	}
	if q.Limit > 1000 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "must not exceed 1000"})
	}
	if q.RemittanceStatus != nil &&
		!validator.IsInSlice(*q.RemittanceStatus, []string{RemittanceStatusRemitted, RemittanceStatusUnremitted}) {
		errs = append(errs, validator.ValidationError{Field: "remittanceStatus", Message: "must be REMITTED or UNREMITTED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkLogListItem struct {
	ID             string `json:"id"`
	WorkerUserID   string `json:"worker_user_id"`
	TaskIdentifier string `json:"task_identifier"`
	TotalAmount    string `json:"total_amount"`
	IsRemitted     bool   `json:"is_remitted"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type WorkLogListResponse struct {
	Data  []WorkLogListItem `json:"data"`
	Count int64             `json:"count"`
}
