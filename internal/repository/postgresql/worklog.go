package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/worklogpay/settlement-backend-go/internal/domain/worklog"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/database"
)

type workLogRepository struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) worklog.WorkLogRepository {
	return &workLogRepository{db: db}
}

func (r *workLogRepository) Create(ctx context.Context, wl worklog.WorkLog) (worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO worklogs (worker_user_id, task_identifier)
		VALUES ($1, $2)
		RETURNING id, worker_user_id, task_identifier, created_at, updated_at
	`

	var created worklog.WorkLog
	err := q.QueryRow(ctx, query, wl.WorkerUserID, wl.TaskIdentifier).Scan(
		&created.ID, &created.WorkerUserID, &created.TaskIdentifier, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return worklog.WorkLog{}, fmt.Errorf("failed to create worklog: %w", err)
	}

	return created, nil
}

func (r *workLogRepository) GetByID(ctx context.Context, id string) (worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_user_id, task_identifier, created_at, updated_at
		FROM worklogs
		WHERE id = $1
	`

	var wl worklog.WorkLog
	err := q.QueryRow(ctx, query, id).Scan(
		&wl.ID, &wl.WorkerUserID, &wl.TaskIdentifier, &wl.CreatedAt, &wl.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.WorkLog{}, worklog.ErrWorkLogNotFound
		}
		return worklog.WorkLog{}, fmt.Errorf("failed to get worklog: %w", err)
	}

	return wl, nil
}

// List returns worklogs with their computed payable state. total_amount is
// the sum of non-deleted segment gross amounts plus all signed adjustments.
// is_remitted holds only when the worklog has at least one non-deleted
// segment and every such segment is covered by a PAID remittance line.
func (r *workLogRepository) List(ctx context.Context, query worklog.ListWorkLogsQuery) ([]worklog.WorkLogSummary, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM (
			SELECT wl.id, wl.worker_user_id, wl.task_identifier, wl.created_at, wl.updated_at,
				COALESCE((
					SELECT SUM(ts.hours_worked * ts.hourly_rate)
					FROM time_segments ts
					WHERE ts.worklog_id = wl.id AND ts.deleted_at IS NULL
				), 0)
				+ COALESCE((
					SELECT SUM(CASE WHEN a.adjustment_type = 'ADDITION' THEN a.amount ELSE -a.amount END)
					FROM adjustments a
					WHERE a.worklog_id = wl.id
				), 0) AS total_amount,
				(
					EXISTS (
						SELECT 1 FROM time_segments ts
						WHERE ts.worklog_id = wl.id AND ts.deleted_at IS NULL
					)
					AND NOT EXISTS (
						SELECT 1 FROM time_segments ts
						WHERE ts.worklog_id = wl.id AND ts.deleted_at IS NULL
						AND NOT EXISTS (
							SELECT 1 FROM remittance_lines rl
							JOIN remittances rem ON rl.remittance_id = rem.id
							WHERE rl.time_segment_id = ts.id AND rem.status = 'PAID'
						)
					)
				) AS is_remitted
			FROM worklogs wl
		) w
	`
	args := []interface{}{}
	argIdx := 1

	if query.RemittanceStatus != nil {
		baseQuery += fmt.Sprintf(" WHERE w.is_remitted = $%d", argIdx)
		args = append(args, *query.RemittanceStatus == worklog.RemittanceStatusRemitted)
		argIdx++
	}

	// Count query
	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count worklogs: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT w.id, w.worker_user_id, w.task_identifier, w.total_amount, w.is_remitted, w.created_at, w.updated_at
		%s
		ORDER BY w.created_at
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)

	args = append(args, query.Limit, query.Skip)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list worklogs: %w", err)
	}
	defer rows.Close()

	var summaries []worklog.WorkLogSummary
	for rows.Next() {
		var s worklog.WorkLogSummary
		if err := rows.Scan(
			&s.ID, &s.WorkerUserID, &s.TaskIdentifier, &s.TotalAmount, &s.IsRemitted, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan worklog: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, totalCount, nil
}
