package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/worklogpay/settlement-backend-go/internal/domain/worklog"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/database"
)

type timeSegmentRepository struct {
	db *database.DB
}

func NewTimeSegmentRepository(db *database.DB) worklog.TimeSegmentRepository {
	return &timeSegmentRepository{db: db}
}

func (r *timeSegmentRepository) Create(ctx context.Context, segment worklog.TimeSegment) (worklog.TimeSegment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_segments (worklog_id, hours_worked, hourly_rate, segment_date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, worklog_id, hours_worked, hourly_rate, segment_date, notes, deleted_at, created_at
	`

	var created worklog.TimeSegment
	err := q.QueryRow(ctx, query,
		segment.WorklogID, segment.HoursWorked, segment.HourlyRate, segment.SegmentDate, segment.Notes,
	).Scan(
		&created.ID, &created.WorklogID, &created.HoursWorked, &created.HourlyRate,
		&created.SegmentDate, &created.Notes, &created.DeletedAt, &created.CreatedAt,
	)
	if err != nil {
		return worklog.TimeSegment{}, fmt.Errorf("failed to create time segment: %w", err)
	}

	return created, nil
}

func (r *timeSegmentRepository) GetByID(ctx context.Context, id string) (worklog.TimeSegment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worklog_id, hours_worked, hourly_rate, segment_date, notes, deleted_at, created_at
		FROM time_segments
		WHERE id = $1
	`

	var segment worklog.TimeSegment
	err := q.QueryRow(ctx, query, id).Scan(
		&segment.ID, &segment.WorklogID, &segment.HoursWorked, &segment.HourlyRate,
		&segment.SegmentDate, &segment.Notes, &segment.DeletedAt, &segment.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.TimeSegment{}, worklog.ErrTimeSegmentNotFound
		}
		return worklog.TimeSegment{}, fmt.Errorf("failed to get time segment: %w", err)
	}

	return segment, nil
}

// SoftDelete marks a segment deleted. The row is never removed; every
// settlement read path filters on deleted_at IS NULL.
func (r *timeSegmentRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deleted bool
	err := q.QueryRow(ctx, `SELECT deleted_at IS NOT NULL FROM time_segments WHERE id = $1`, id).Scan(&deleted)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.ErrTimeSegmentNotFound
		}
		return fmt.Errorf("failed to check time segment: %w", err)
	}
	if deleted {
		return worklog.ErrTimeSegmentAlreadyDeleted
	}

	query := `UPDATE time_segments SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL RETURNING id`

	var deletedID string
	err = q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.ErrTimeSegmentAlreadyDeleted
		}
		return fmt.Errorf("failed to delete time segment: %w", err)
	}

	return nil
}
