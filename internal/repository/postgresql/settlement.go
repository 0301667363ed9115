package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worklogpay/settlement-backend-go/internal/domain/settlement"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/database"
)

type settlementRepository struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) settlement.SettlementRepository {
	return &settlementRepository{db: db}
}

// ========== ELIGIBILITY SELECTOR ==========

// SelectUnsettledSegments returns non-deleted segments dated within the
// period (inclusive both ends) that are not yet linked to a PENDING or PAID
// remittance.
func (r *settlementRepository) SelectUnsettledSegments(ctx context.Context, periodStart, periodEnd time.Time) ([]settlement.EligibleSegment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ts.id, ts.worklog_id, wl.worker_user_id, ts.hours_worked, ts.hourly_rate, ts.segment_date
		FROM time_segments ts
		JOIN worklogs wl ON ts.worklog_id = wl.id
		WHERE ts.deleted_at IS NULL
			AND ts.segment_date BETWEEN $1 AND $2
			AND NOT EXISTS (
				SELECT 1 FROM remittance_lines rl
				JOIN remittances rem ON rl.remittance_id = rem.id
				WHERE rl.time_segment_id = ts.id AND rem.status <> 'FAILED'
			)
		ORDER BY ts.segment_date, ts.id
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to select unsettled segments: %w", err)
	}
	defer rows.Close()

	return scanEligibleSegments(rows)
}

// SelectFailedRemittanceSegments returns segments whose only settlement
// attempts failed, regardless of period. They are re-surfaced on every run.
func (r *settlementRepository) SelectFailedRemittanceSegments(ctx context.Context) ([]settlement.EligibleSegment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ts.id, ts.worklog_id, wl.worker_user_id, ts.hours_worked, ts.hourly_rate, ts.segment_date
		FROM time_segments ts
		JOIN worklogs wl ON ts.worklog_id = wl.id
		JOIN remittance_lines rl ON rl.time_segment_id = ts.id
		JOIN remittances rem ON rl.remittance_id = rem.id AND rem.status = 'FAILED'
		WHERE ts.deleted_at IS NULL
			AND NOT EXISTS (
				SELECT 1 FROM remittance_lines rl2
				JOIN remittances rem2 ON rl2.remittance_id = rem2.id
				WHERE rl2.time_segment_id = ts.id AND rem2.status <> 'FAILED'
			)
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select failed remittance segments: %w", err)
	}
	defer rows.Close()

	return scanEligibleSegments(rows)
}

func scanEligibleSegments(rows pgx.Rows) ([]settlement.EligibleSegment, error) {
	var segments []settlement.EligibleSegment
	for rows.Next() {
		var s settlement.EligibleSegment
		if err := rows.Scan(
			&s.SegmentID, &s.WorklogID, &s.WorkerUserID, &s.HoursWorked, &s.HourlyRate, &s.SegmentDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan eligible segment: %w", err)
		}
		segments = append(segments, s)
	}
	return segments, nil
}

// ========== SETTLEMENT WRITER ==========

func (r *settlementRepository) CreateSettlement(ctx context.Context, s settlement.Settlement) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settlements (period_start, period_end, status, total_remittances_generated)
		VALUES ($1, $2, $3, $4)
		RETURNING id, period_start, period_end, run_at, status, total_remittances_generated
	`

	var created settlement.Settlement
	err := q.QueryRow(ctx, query,
		s.PeriodStart, s.PeriodEnd, s.Status, s.TotalRemittancesGenerated,
	).Scan(
		&created.ID, &created.PeriodStart, &created.PeriodEnd, &created.RunAt,
		&created.Status, &created.TotalRemittancesGenerated,
	)
	if err != nil {
		return settlement.Settlement{}, fmt.Errorf("failed to create settlement: %w", err)
	}

	return created, nil
}

func (r *settlementRepository) CreateRemittance(ctx context.Context, rem settlement.Remittance) (settlement.Remittance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO remittances (settlement_id, worker_user_id, gross_amount, adjustments_amount, net_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, settlement_id, worker_user_id, gross_amount, adjustments_amount, net_amount, status, paid_at, created_at
	`

	var created settlement.Remittance
	err := q.QueryRow(ctx, query,
		rem.SettlementID, rem.WorkerUserID, rem.GrossAmount, rem.AdjustmentsAmount, rem.NetAmount, rem.Status,
	).Scan(
		&created.ID, &created.SettlementID, &created.WorkerUserID, &created.GrossAmount,
		&created.AdjustmentsAmount, &created.NetAmount, &created.Status, &created.PaidAt, &created.CreatedAt,
	)
	if err != nil {
		return settlement.Remittance{}, fmt.Errorf("failed to create remittance: %w", err)
	}

	return created, nil
}

func (r *settlementRepository) CreateRemittanceLines(ctx context.Context, lines []settlement.RemittanceLine) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO remittance_lines (remittance_id, time_segment_id, amount)
		VALUES ($1, $2, $3)
	`

	for _, line := range lines {
		if _, err := q.Exec(ctx, query, line.RemittanceID, line.TimeSegmentID, line.Amount); err != nil {
			return fmt.Errorf("failed to create remittance line: %w", err)
		}
	}

	return nil
}

// ========== QUERIES ==========

func (r *settlementRepository) GetSettlementByID(ctx context.Context, id string) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_start, period_end, run_at, status, total_remittances_generated
		FROM settlements
		WHERE id = $1
	`

	var s settlement.Settlement
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.PeriodStart, &s.PeriodEnd, &s.RunAt, &s.Status, &s.TotalRemittancesGenerated,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.Settlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.Settlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}

	return s, nil
}

func (r *settlementRepository) ListSettlements(ctx context.Context, skip, limit int) ([]settlement.Settlement, int64, error) {
	q := GetQuerier(ctx, r.db)

	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM settlements`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count settlements: %w", err)
	}

	query := `
		SELECT id, period_start, period_end, run_at, status, total_remittances_generated
		FROM settlements
		ORDER BY run_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []settlement.Settlement
	for rows.Next() {
		var s settlement.Settlement
		if err := rows.Scan(
			&s.ID, &s.PeriodStart, &s.PeriodEnd, &s.RunAt, &s.Status, &s.TotalRemittancesGenerated,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, totalCount, nil
}

func (r *settlementRepository) GetRemittancesBySettlementID(ctx context.Context, settlementID string) ([]settlement.Remittance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, settlement_id, worker_user_id, gross_amount, adjustments_amount, net_amount, status, paid_at, created_at
		FROM remittances
		WHERE settlement_id = $1
		ORDER BY worker_user_id
	`

	rows, err := q.Query(ctx, query, settlementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get remittances: %w", err)
	}
	defer rows.Close()

	var remittances []settlement.Remittance
	for rows.Next() {
		var rem settlement.Remittance
		if err := rows.Scan(
			&rem.ID, &rem.SettlementID, &rem.WorkerUserID, &rem.GrossAmount,
			&rem.AdjustmentsAmount, &rem.NetAmount, &rem.Status, &rem.PaidAt, &rem.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan remittance: %w", err)
		}
		remittances = append(remittances, rem)
	}

	return remittances, nil
}

func (r *settlementRepository) GetRemittanceByID(ctx context.Context, id string) (settlement.Remittance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, settlement_id, worker_user_id, gross_amount, adjustments_amount, net_amount, status, paid_at, created_at
		FROM remittances
		WHERE id = $1
	`

	var rem settlement.Remittance
	err := q.QueryRow(ctx, query, id).Scan(
		&rem.ID, &rem.SettlementID, &rem.WorkerUserID, &rem.GrossAmount,
		&rem.AdjustmentsAmount, &rem.NetAmount, &rem.Status, &rem.PaidAt, &rem.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.Remittance{}, settlement.ErrRemittanceNotFound
		}
		return settlement.Remittance{}, fmt.Errorf("failed to get remittance: %w", err)
	}

	return rem, nil
}

// ========== STATUS TRANSITIONS ==========

func (r *settlementRepository) MarkRemittancePaid(ctx context.Context, id string) (settlement.Remittance, error) {
	q := GetQuerier(ctx, r.db)

	if err := r.checkPending(ctx, id); err != nil {
		return settlement.Remittance{}, err
	}

	query := `
		UPDATE remittances
		SET status = 'PAID', paid_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
		RETURNING id, settlement_id, worker_user_id, gross_amount, adjustments_amount, net_amount, status, paid_at, created_at
	`

	var rem settlement.Remittance
	err := q.QueryRow(ctx, query, id).Scan(
		&rem.ID, &rem.SettlementID, &rem.WorkerUserID, &rem.GrossAmount,
		&rem.AdjustmentsAmount, &rem.NetAmount, &rem.Status, &rem.PaidAt, &rem.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.Remittance{}, settlement.ErrRemittanceNotPending
		}
		return settlement.Remittance{}, fmt.Errorf("failed to mark remittance paid: %w", err)
	}

	return rem, nil
}

// MarkRemittanceFailed moves a pending remittance to FAILED and voids its
// lines, which releases the covered segments for the next run. The FAILED
// row and its voided lines remain as the audit record of the attempt.
// Callers run this inside a transaction so the two updates land together.
func (r *settlementRepository) MarkRemittanceFailed(ctx context.Context, id string) (settlement.Remittance, error) {
	q := GetQuerier(ctx, r.db)

	if err := r.checkPending(ctx, id); err != nil {
		return settlement.Remittance{}, err
	}

	query := `
		UPDATE remittances
		SET status = 'FAILED'
		WHERE id = $1 AND status = 'PENDING'
		RETURNING id, settlement_id, worker_user_id, gross_amount, adjustments_amount, net_amount, status, paid_at, created_at
	`

	var rem settlement.Remittance
	err := q.QueryRow(ctx, query, id).Scan(
		&rem.ID, &rem.SettlementID, &rem.WorkerUserID, &rem.GrossAmount,
		&rem.AdjustmentsAmount, &rem.NetAmount, &rem.Status, &rem.PaidAt, &rem.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.Remittance{}, settlement.ErrRemittanceNotPending
		}
		return settlement.Remittance{}, fmt.Errorf("failed to mark remittance failed: %w", err)
	}

	if _, err := q.Exec(ctx,
		`UPDATE remittance_lines SET voided_at = NOW() WHERE remittance_id = $1 AND voided_at IS NULL`, id,
	); err != nil {
		return settlement.Remittance{}, fmt.Errorf("failed to void remittance lines: %w", err)
	}

	return rem, nil
}

func (r *settlementRepository) checkPending(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var status string
	err := q.QueryRow(ctx, `SELECT status FROM remittances WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.ErrRemittanceNotFound
		}
		return fmt.Errorf("failed to check remittance status: %w", err)
	}
	if status == string(settlement.RemittanceStatusPaid) {
		return settlement.ErrRemittanceAlreadyPaid
	}
	if status != string(settlement.RemittanceStatusPending) {
		return settlement.ErrRemittanceNotPending
	}

	return nil
}
