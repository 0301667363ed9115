package worklog

import "context"

// WorkLogRepository defines data access for worklogs and their ledgers.
type WorkLogRepository interface {
	Create(ctx context.Context, wl WorkLog) (WorkLog, error)
	GetByID(ctx context.Context, id string) (WorkLog, error)
	List(ctx context.Context, query ListWorkLogsQuery) ([]WorkLogSummary, int64, error)
}

// TimeSegmentRepository defines data access for the time ledger. Segments
// are append-only; deletion is a soft delete that every settlement read
// path excludes.
type TimeSegmentRepository interface {
	Create(ctx context.Context, segment TimeSegment) (TimeSegment, error)
	GetByID(ctx context.Context, id string) (TimeSegment, error)
	SoftDelete(ctx context.Context, id string) error
}

// AdjustmentRepository defines data access for the adjustment ledger.
type AdjustmentRepository interface {
	Create(ctx context.Context, adjustment Adjustment) (Adjustment, error)
	GetByWorklogIDs(ctx context.Context, worklogIDs []string) ([]Adjustment, error)
}
