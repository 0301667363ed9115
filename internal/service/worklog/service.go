package worklog

import (
	"context"
	"time"

	"github.com/worklogpay/settlement-backend-go/internal/domain/worklog"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/database"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/validator"
)

type WorkLogServiceImpl struct {
	db              *database.DB
	workLogRepo     worklog.WorkLogRepository
	timeSegmentRepo worklog.TimeSegmentRepository
	adjustmentRepo  worklog.AdjustmentRepository
}

func NewWorkLogService(
	db *database.DB,
	workLogRepo worklog.WorkLogRepository,
	timeSegmentRepo worklog.TimeSegmentRepository,
	adjustmentRepo worklog.AdjustmentRepository,
) worklog.WorkLogService {
	return &WorkLogServiceImpl{
		db:              db,
		workLogRepo:     workLogRepo,
		timeSegmentRepo: timeSegmentRepo,
		adjustmentRepo:  adjustmentRepo,
	}
}

func (s *WorkLogServiceImpl) CreateWorkLog(ctx context.Context, req worklog.CreateWorkLogRequest) (worklog.WorkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	created, err := s.workLogRepo.Create(ctx, worklog.WorkLog{
		WorkerUserID:   req.WorkerUserID,
		TaskIdentifier: req.TaskIdentifier,
	})
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	return worklog.WorkLogResponse{
		ID:             created.ID,
		WorkerUserID:   created.WorkerUserID,
		TaskIdentifier: created.TaskIdentifier,
		CreatedAt:      created.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      created.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func (s *WorkLogServiceImpl) LogTimeSegment(ctx context.Context, req worklog.LogTimeSegmentRequest) (worklog.TimeSegmentResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.TimeSegmentResponse{}, err
	}

	if _, err := s.workLogRepo.GetByID(ctx, req.WorklogID); err != nil {
		return worklog.TimeSegmentResponse{}, err
	}

	segmentDate, err := validator.ParseDate(req.SegmentDate)
	if err != nil {
		return worklog.TimeSegmentResponse{}, err
	}

	created, err := s.timeSegmentRepo.Create(ctx, worklog.TimeSegment{
		WorklogID:   req.WorklogID,
		HoursWorked: req.HoursWorked,
		HourlyRate:  req.HourlyRate,
		SegmentDate: segmentDate,
		Notes:       req.Notes,
	})
	if err != nil {
		return worklog.TimeSegmentResponse{}, err
	}

	return worklog.TimeSegmentResponse{
		ID:          created.ID,
		WorklogID:   created.WorklogID,
		HoursWorked: created.HoursWorked.StringFixed(2),
		HourlyRate:  created.HourlyRate.StringFixed(2),
		GrossAmount: created.GrossAmount().StringFixed(2),
		SegmentDate: validator.FormatDate(created.SegmentDate),
		Notes:       created.Notes,
	}, nil
}

// DeleteTimeSegment soft-deletes a segment. Deleted segments stay on disk
// for audit but are excluded from every future settlement run.
func (s *WorkLogServiceImpl) DeleteTimeSegment(ctx context.Context, id string) error {
	return s.timeSegmentRepo.SoftDelete(ctx, id)
}

func (s *WorkLogServiceImpl) RecordAdjustment(ctx context.Context, req worklog.RecordAdjustmentRequest) (worklog.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.AdjustmentResponse{}, err
	}

	if _, err := s.workLogRepo.GetByID(ctx, req.WorklogID); err != nil {
		return worklog.AdjustmentResponse{}, err
	}

	created, err := s.adjustmentRepo.Create(ctx, worklog.Adjustment{
		WorklogID:      req.WorklogID,
		AdjustmentType: worklog.AdjustmentType(req.AdjustmentType),
		Amount:         req.Amount,
		Reason:         req.Reason,
	})
	if err != nil {
		return worklog.AdjustmentResponse{}, err
	}

	return worklog.AdjustmentResponse{
		ID:             created.ID,
		WorklogID:      created.WorklogID,
		AdjustmentType: string(created.AdjustmentType),
		Amount:         created.Amount.StringFixed(2),
		Reason:         created.Reason,
	}, nil
}

func (s *WorkLogServiceImpl) ListWorkLogs(ctx context.Context, query worklog.ListWorkLogsQuery) (worklog.WorkLogListResponse, error) {
	if err := query.Validate(); err != nil {
		return worklog.WorkLogListResponse{}, err
	}

	summaries, count, err := s.workLogRepo.List(ctx, query)
	if err != nil {
		return worklog.WorkLogListResponse{}, err
	}

	resp := worklog.WorkLogListResponse{
		Data:  make([]worklog.WorkLogListItem, 0, len(summaries)),
		Count: count,
	}
	for _, summary := range summaries {
		resp.Data = append(resp.Data, worklog.WorkLogListItem{
			ID:             summary.ID,
			WorkerUserID:   summary.WorkerUserID,
			TaskIdentifier: summary.TaskIdentifier,
			TotalAmount:    summary.TotalAmount.StringFixed(2),
			IsRemitted:     summary.IsRemitted,
			CreatedAt:      summary.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      summary.UpdatedAt.Format(time.RFC3339),
		})
	}

	return resp, nil
}
