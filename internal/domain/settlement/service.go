package settlement

import (
	"context"
	"time"
)

type SettlementService interface {
	GenerateRemittancesForPeriod(ctx context.Context, periodStart, periodEnd time.Time) (SettlementResult, error)
	GetSettlement(ctx context.Context, id string) (SettlementDetailResponse, error)
	ListSettlements(ctx context.Context, skip, limit int) (SettlementListResponse, error)
	MarkRemittancePaid(ctx context.Context, id string) (RemittanceResponse, error)
	MarkRemittanceFailed(ctx context.Context, id string) (RemittanceResponse, error)
}
