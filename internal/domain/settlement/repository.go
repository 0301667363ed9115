package settlement

import (
	"context"
	"time"
)

// SettlementRepository defines data access for settlements, remittances and
// remittance lines. The eligibility queries and the writes of one run are
// expected to execute inside the same transaction.
type SettlementRepository interface {
	// Eligibility selector
	SelectUnsettledSegments(ctx context.Context, periodStart, periodEnd time.Time) ([]EligibleSegment, error)
	SelectFailedRemittanceSegments(ctx context.Context) ([]EligibleSegment, error)

	// Settlement writer
	CreateSettlement(ctx context.Context, s Settlement) (Settlement, error)
	CreateRemittance(ctx context.Context, r Remittance) (Remittance, error)
	CreateRemittanceLines(ctx context.Context, lines []RemittanceLine) error

	// Queries
	GetSettlementByID(ctx context.Context, id string) (Settlement, error)
	ListSettlements(ctx context.Context, skip, limit int) ([]Settlement, int64, error)
	GetRemittancesBySettlementID(ctx context.Context, settlementID string) ([]Remittance, error)
	GetRemittanceByID(ctx context.Context, id string) (Remittance, error)

	// Status transitions driven by the external payment process
	MarkRemittancePaid(ctx context.Context, id string) (Remittance, error)
	MarkRemittanceFailed(ctx context.Context, id string) (Remittance, error)
}
