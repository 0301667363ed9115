package postgresql

import (
	"context"
	"fmt"

	"github.com/worklogpay/settlement-backend-go/internal/domain/worklog"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) worklog.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

func (r *adjustmentRepository) Create(ctx context.Context, adjustment worklog.Adjustment) (worklog.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adjustments (worklog_id, adjustment_type, amount, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, worklog_id, adjustment_type, amount, reason, created_at
	`

	var created worklog.Adjustment
	err := q.QueryRow(ctx, query,
		adjustment.WorklogID, adjustment.AdjustmentType, adjustment.Amount, adjustment.Reason,
	).Scan(
		&created.ID, &created.WorklogID, &created.AdjustmentType, &created.Amount, &created.Reason, &created.CreatedAt,
	)
	if err != nil {
		return worklog.Adjustment{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	return created, nil
}

// GetByWorklogIDs returns every adjustment ever recorded for the given
// worklogs, regardless of when. Adjustments apply whenever their worklog is
// touched by a settlement run.
func (r *adjustmentRepository) GetByWorklogIDs(ctx context.Context, worklogIDs []string) ([]worklog.Adjustment, error) {
	if len(worklogIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worklog_id, adjustment_type, amount, reason, created_at
		FROM adjustments
		WHERE worklog_id = ANY($1)
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, worklogIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []worklog.Adjustment
	for rows.Next() {
		var a worklog.Adjustment
		if err := rows.Scan(
			&a.ID, &a.WorklogID, &a.AdjustmentType, &a.Amount, &a.Reason, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}

	return adjustments, nil
}
