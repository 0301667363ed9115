package worklog

import "context"

type WorkLogService interface {
	CreateWorkLog(ctx context.Context, req CreateWorkLogRequest) (WorkLogResponse, error)
	LogTimeSegment(ctx context.Context, req LogTimeSegmentRequest) (TimeSegmentResponse, error)
	DeleteTimeSegment(ctx context.Context, id string) error
	RecordAdjustment(ctx context.Context, req RecordAdjustmentRequest) (AdjustmentResponse, error)
	ListWorkLogs(ctx context.Context, query ListWorkLogsQuery) (WorkLogListResponse, error)
}
