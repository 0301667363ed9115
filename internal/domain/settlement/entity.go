package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementStatus enum. A run either completes or its transaction aborts
// leaving no row, so COMPLETED is the only persisted value.
type SettlementStatus string

const (
	SettlementStatusCompleted SettlementStatus = "COMPLETED"
)

// Settlement records one execution of the engine over a date period.
// Immutable after creation.
type Settlement struct {
	ID                        string
	PeriodStart               time.Time
	PeriodEnd                 time.Time
	RunAt                     time.Time
	Status                    SettlementStatus
	TotalRemittancesGenerated int
}

// RemittanceStatus enum
type RemittanceStatus string

const (
	RemittanceStatusPending RemittanceStatus = "PENDING"
	RemittanceStatusPaid    RemittanceStatus = "PAID"
	RemittanceStatusFailed  RemittanceStatus = "FAILED"
)

// Remittance is the amount owed to one worker from one settlement run. The
// engine creates it PENDING; the external payment process drives it to PAID
// or FAILED. A FAILED remittance stays as an audit record while its segments
// become eligible again on the next run.
type Remittance struct {
	ID                string
	SettlementID      string
	WorkerUserID      string
	GrossAmount       decimal.Decimal
	AdjustmentsAmount decimal.Decimal
	NetAmount         decimal.Decimal
	Status            RemittanceStatus
	PaidAt            *time.Time
	CreatedAt         time.Time
}

// RemittanceLine links a remittance to one segment that funded it, with the
// segment's gross amount at inclusion time. VoidedAt is set when the owning
// remittance fails, which releases the segment for re-settlement; the line
// itself stays readable for audit.
type RemittanceLine struct {
	ID            string
	RemittanceID  string
	TimeSegmentID string
	Amount        decimal.Decimal
	VoidedAt      *time.Time
}

// EligibleSegment is a settleable time segment joined with its worklog's
// worker, as returned by the eligibility queries.
type EligibleSegment struct {
	SegmentID    string
	WorklogID    string
	WorkerUserID string
	HoursWorked  decimal.Decimal
	HourlyRate   decimal.Decimal
	SegmentDate  time.Time
}

// GrossAmount is hours times rate for the segment.
func (s EligibleSegment) GrossAmount() decimal.Decimal {
	return s.HoursWorked.Mul(s.HourlyRate)
}

// WorkerTotals holds one worker's aggregated pay for a run.
type WorkerTotals struct {
	WorkerUserID string
	Gross        decimal.Decimal
	Adjustments  decimal.Decimal
	Net          decimal.Decimal
	Segments     []EligibleSegment
}
