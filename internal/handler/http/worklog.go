package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/worklogpay/settlement-backend-go/internal/domain/worklog"
	"github.com/worklogpay/settlement-backend-go/internal/handler/http/response"
)

type WorkLogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	LogTimeSegment(w http.ResponseWriter, r *http.Request)
	DeleteTimeSegment(w http.ResponseWriter, r *http.Request)
	RecordAdjustment(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type workLogHandlerImpl struct {
	workLogService worklog.WorkLogService
}

func NewWorkLogHandler(workLogService worklog.WorkLogService) WorkLogHandler {
	return &workLogHandlerImpl{workLogService: workLogService}
}

func (h *workLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worklog.CreateWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workLogService.CreateWorkLog(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worklog created", result)
}

func (h *workLogHandlerImpl) LogTimeSegment(w http.ResponseWriter, r *http.Request) {
	worklogID := chi.URLParam(r, "id")
	if worklogID == "" {
		response.BadRequest(w, "Worklog ID is required", nil)
		return
	}

	var req worklog.LogTimeSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.WorklogID = worklogID

	result, err := h.workLogService.LogTimeSegment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time segment logged", result)
}

func (h *workLogHandlerImpl) DeleteTimeSegment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time segment ID is required", nil)
		return
	}

	if err := h.workLogService.DeleteTimeSegment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

func (h *workLogHandlerImpl) RecordAdjustment(w http.ResponseWriter, r *http.Request) {
	worklogID := chi.URLParam(r, "id")
	if worklogID == "" {
		response.BadRequest(w, "Worklog ID is required", nil)
		return
	}

	var req worklog.RecordAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.WorklogID = worklogID

	result, err := h.workLogService.RecordAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment recorded", result)
}

// List serves the reporting collaborator. The wire shape ({data, count},
// decimal strings) is fixed, so the payload goes out without the envelope.
func (h *workLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := worklog.ListWorkLogsQuery{Skip: 0, Limit: 100}

	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "skip must be an integer", nil)
			return
		}
		query.Skip = skip
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "limit must be an integer", nil)
			return
		}
		query.Limit = limit
	}
	if raw := r.URL.Query().Get("remittanceStatus"); raw != "" {
		query.RemittanceStatus = &raw
	}

	result, err := h.workLogService.ListWorkLogs(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
