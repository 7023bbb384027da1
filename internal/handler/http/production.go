package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/production"
	"github.com/fabtrack/shopfloor-backend-go/internal/handler/http/response"
)

type ProductionHandler interface {
	CreateLog(w http.ResponseWriter, r *http.Request)
	GetLog(w http.ResponseWriter, r *http.Request)
	ListLogs(w http.ResponseWriter, r *http.Request)
}

type ProductionHandlerImpl struct {
	productionService production.ProductionService
}

func NewProductionHandler(productionService production.ProductionService) ProductionHandler {
	return &ProductionHandlerImpl{productionService: productionService}
}

// CreateLog implements ProductionHandler.
func (h *ProductionHandlerImpl) CreateLog(w http.ResponseWriter, r *http.Request) {
	var req production.CreateLogRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLog decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.productionService.CreateLog(r.Context(), req)
	if err != nil {
		slog.Error("CreateLog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Production log recorded",
		"production_log_id", created.ProductionLogID,
		"efficiency", created.Efficiency,
	)

	response.Created(w, "Production log recorded", created)
}

// GetLog implements ProductionHandler.
func (h *ProductionHandlerImpl) GetLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	log, err := h.productionService.GetLog(r.Context(), id)
	if err != nil {
		slog.Error("GetLog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, log)
}

// ListLogs implements ProductionHandler.
func (h *ProductionHandlerImpl) ListLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	logs, err := h.productionService.ListLogs(r.Context(), limit, offset)
	if err != nil {
		slog.Error("ListLogs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}
