package worklog

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkLog groups the time segments and adjustments logged against one task
// for one worker. It carries no amounts of its own.
type WorkLog struct {
	ID             string
	WorkerUserID   string
	TaskIdentifier string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TimeSegment is one logged block of worked time. Segments are immutable
// once created; the only mutation is soft deletion via DeletedAt.
type TimeSegment struct {
	ID          string
	WorklogID   string
	HoursWorked decimal.Decimal
	HourlyRate  decimal.Decimal
	SegmentDate time.Time
	Notes       *string
	DeletedAt   *time.Time
	CreatedAt   time.Time
}

// GrossAmount is hours times rate. Computed, never stored.
func (s TimeSegment) GrossAmount() decimal.Decimal {
	return s.HoursWorked.Mul(s.HourlyRate)
}

// AdjustmentType enum
type AdjustmentType string

const (
	AdjustmentTypeAddition  AdjustmentType = "ADDITION"
	AdjustmentTypeDeduction AdjustmentType = "DEDUCTION"
)

// Adjustment is a manual credit or debit against a worklog's payable total.
// It applies whenever its worklog is touched by a settlement run, no matter
// when it was recorded. Immutable once created.
type Adjustment struct {
	ID             string
	WorklogID      string
	AdjustmentType AdjustmentType
	Amount         decimal.Decimal
	Reason         *string
	CreatedAt      time.Time
}

// SignedAmount returns +amount for additions and -amount for deductions.
func (a Adjustment) SignedAmount() decimal.Decimal {
	if a.AdjustmentType == AdjustmentTypeDeduction {
		return a.Amount.Neg()
	}
	return a.Amount
}

// WorkLogSummary is a worklog with its computed payable state, produced by
// the listing query.
type WorkLogSummary struct {
	ID             string
	WorkerUserID   string
	TaskIdentifier string
	TotalAmount    decimal.Decimal
	IsRemitted     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
