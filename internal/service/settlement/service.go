package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/worklogpay/settlement-backend-go/internal/domain/settlement"
	"github.com/worklogpay/settlement-backend-go/internal/domain/worklog"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/database"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/validator"
	"github.com/worklogpay/settlement-backend-go/internal/repository/postgresql"
)

type SettlementServiceImpl struct {
	db             *database.DB
	settlementRepo settlement.SettlementRepository
	adjustmentRepo worklog.AdjustmentRepository
}

func NewSettlementService(
	db *database.DB,
	settlementRepo settlement.SettlementRepository,
	adjustmentRepo worklog.AdjustmentRepository,
) settlement.SettlementService {
	return &SettlementServiceImpl{
		db:             db,
		settlementRepo: settlementRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// GenerateRemittancesForPeriod runs the settlement engine over one period.
// Eligible segments are the unsettled in-period ones plus any segment whose
// only remittance failed; the whole run commits as one serializable
// transaction, so a failed run leaves nothing behind and a repeat run never
// re-pays an already settled segment.
func (s *SettlementServiceImpl) GenerateRemittancesForPeriod(ctx context.Context, periodStart, periodEnd time.Time) (settlement.SettlementResult, error) {
	if periodStart.After(periodEnd) {
		return settlement.SettlementResult{}, settlement.ErrInvalidPeriod
	}

	var result settlement.SettlementResult
	err := postgresql.WithSerializableTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		periodSegments, err := s.settlementRepo.SelectUnsettledSegments(txCtx, periodStart, periodEnd)
		if err != nil {
			return err
		}
		recoveredSegments, err := s.settlementRepo.SelectFailedRemittanceSegments(txCtx)
		if err != nil {
			return err
		}
		segments := dedupeSegments(periodSegments, recoveredSegments)

		adjustments, err := s.adjustmentRepo.GetByWorklogIDs(txCtx, distinctWorklogIDs(segments))
		if err != nil {
			return err
		}

		totals := aggregateTotals(segments, adjustments)

		created, err := s.settlementRepo.CreateSettlement(txCtx, settlement.Settlement{
			PeriodStart:               periodStart,
			PeriodEnd:                 periodEnd,
			Status:                    settlement.SettlementStatusCompleted,
			TotalRemittancesGenerated: len(totals),
		})
		if err != nil {
			return err
		}

		totalGross := decimal.Zero
		totalNet := decimal.Zero
		for _, t := range totals {
			rem, err := s.settlementRepo.CreateRemittance(txCtx, settlement.Remittance{
				SettlementID:      created.ID,
				WorkerUserID:      t.WorkerUserID,
				GrossAmount:       t.Gross,
				AdjustmentsAmount: t.Adjustments,
				NetAmount:         t.Net,
				Status:            settlement.RemittanceStatusPending,
			})
			if err != nil {
				return err
			}

			lines := make([]settlement.RemittanceLine, 0, len(t.Segments))
			for _, seg := range t.Segments {
				lines = append(lines, settlement.RemittanceLine{
					RemittanceID:  rem.ID,
					TimeSegmentID: seg.SegmentID,
					Amount:        seg.GrossAmount(),
				})
			}
			if err := s.settlementRepo.CreateRemittanceLines(txCtx, lines); err != nil {
				return err
			}

			totalGross = totalGross.Add(t.Gross)
			totalNet = totalNet.Add(t.Net)
		}

		result = settlement.SettlementResult{
			Settlement:         toSettlementPublic(created),
			RemittancesCreated: len(totals),
			TotalGrossAmount:   totalGross.StringFixed(2),
			TotalNetAmount:     totalNet.StringFixed(2),
			Message: fmt.Sprintf("Generated %d remittances for period %s to %s",
				len(totals), validator.FormatDate(periodStart), validator.FormatDate(periodEnd)),
		}
		return nil
	})
	if err != nil {
		return settlement.SettlementResult{}, err
	}

	return result, nil
}

func (s *SettlementServiceImpl) GetSettlement(ctx context.Context, id string) (settlement.SettlementDetailResponse, error) {
	st, err := s.settlementRepo.GetSettlementByID(ctx, id)
	if err != nil {
		return settlement.SettlementDetailResponse{}, err
	}

	remittances, err := s.settlementRepo.GetRemittancesBySettlementID(ctx, id)
	if err != nil {
		return settlement.SettlementDetailResponse{}, err
	}

	resp := settlement.SettlementDetailResponse{
		Settlement:  toSettlementPublic(st),
		Remittances: make([]settlement.RemittanceResponse, 0, len(remittances)),
	}
	for _, rem := range remittances {
		resp.Remittances = append(resp.Remittances, toRemittanceResponse(rem))
	}

	return resp, nil
}

func (s *SettlementServiceImpl) ListSettlements(ctx context.Context, skip, limit int) (settlement.SettlementListResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	settlements, count, err := s.settlementRepo.ListSettlements(ctx, skip, limit)
	if err != nil {
		return settlement.SettlementListResponse{}, err
	}

	resp := settlement.SettlementListResponse{
		Data:  make([]settlement.SettlementPublic, 0, len(settlements)),
		Count: count,
	}
	for _, st := range settlements {
		resp.Data = append(resp.Data, toSettlementPublic(st))
	}

	return resp, nil
}

func (s *SettlementServiceImpl) MarkRemittancePaid(ctx context.Context, id string) (settlement.RemittanceResponse, error) {
	rem, err := s.settlementRepo.MarkRemittancePaid(ctx, id)
	if err != nil {
		return settlement.RemittanceResponse{}, err
	}

	return toRemittanceResponse(rem), nil
}

// MarkRemittanceFailed records an external payment failure. The status flip
// and the line voiding must land together, so both run in one transaction.
func (s *SettlementServiceImpl) MarkRemittanceFailed(ctx context.Context, id string) (settlement.RemittanceResponse, error) {
	var rem settlement.Remittance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		rem, err = s.settlementRepo.MarkRemittanceFailed(txCtx, id)
		return err
	})
	if err != nil {
		return settlement.RemittanceResponse{}, err
	}

	return toRemittanceResponse(rem), nil
}

func toSettlementPublic(s settlement.Settlement) settlement.SettlementPublic {
	return settlement.SettlementPublic{
		ID:                        s.ID,
		PeriodStart:               validator.FormatDate(s.PeriodStart),
		PeriodEnd:                 validator.FormatDate(s.PeriodEnd),
		Status:                    string(s.Status),
		TotalRemittancesGenerated: s.TotalRemittancesGenerated,
	}
}

func toRemittanceResponse(r settlement.Remittance) settlement.RemittanceResponse {
	resp := settlement.RemittanceResponse{
		ID:                r.ID,
		SettlementID:      r.SettlementID,
		WorkerUserID:      r.WorkerUserID,
		GrossAmount:       r.GrossAmount.StringFixed(2),
		AdjustmentsAmount: r.AdjustmentsAmount.StringFixed(2),
		NetAmount:         r.NetAmount.StringFixed(2),
		Status:            string(r.Status),
	}
	if r.PaidAt != nil {
		paidAt := r.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
