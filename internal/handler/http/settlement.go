package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/worklogpay/settlement-backend-go/internal/domain/settlement"
	"github.com/worklogpay/settlement-backend-go/internal/handler/http/response"
	"github.com/worklogpay/settlement-backend-go/internal/pkg/validator"
)

type SettlementHandler interface {
	GenerateRemittances(w http.ResponseWriter, r *http.Request)
	GetSettlement(w http.ResponseWriter, r *http.Request)
	ListSettlements(w http.ResponseWriter, r *http.Request)
	MarkRemittancePaid(w http.ResponseWriter, r *http.Request)
	MarkRemittanceFailed(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	settlementService settlement.SettlementService
}

func NewSettlementHandler(settlementService settlement.SettlementService) SettlementHandler {
	return &settlementHandlerImpl{settlementService: settlementService}
}

// GenerateRemittances runs the settlement engine for a period taken from
// query parameters. period_end defaults to today when omitted. The response
// shape is fixed by external consumers, so it goes out unenveloped.
func (h *settlementHandlerImpl) GenerateRemittances(w http.ResponseWriter, r *http.Request) {
	rawStart := r.URL.Query().Get("period_start")
	if rawStart == "" {
		response.BadRequest(w, "period_start is required", nil)
		return
	}
	periodStart, ok := validator.IsValidDate(rawStart)
	if !ok {
		response.BadRequest(w, "period_start must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	periodEnd := time.Now().UTC().Truncate(24 * time.Hour)
	if rawEnd := r.URL.Query().Get("period_end"); rawEnd != "" {
		periodEnd, ok = validator.IsValidDate(rawEnd)
		if !ok {
			response.BadRequest(w, "period_end must be a valid date (YYYY-MM-DD)", nil)
			return
		}
	}

	result, err := h.settlementService.GenerateRemittancesForPeriod(r.Context(), periodStart, periodEnd)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *settlementHandlerImpl) GetSettlement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	result, err := h.settlementService.GetSettlement(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) ListSettlements(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.settlementService.ListSettlements(r.Context(), skip, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) MarkRemittancePaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Remittance ID is required", nil)
		return
	}

	result, err := h.settlementService.MarkRemittancePaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) MarkRemittanceFailed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Remittance ID is required", nil)
		return
	}

	result, err := h.settlementService.MarkRemittanceFailed(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
