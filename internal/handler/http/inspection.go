package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/inspection"
	"github.com/fabtrack/shopfloor-backend-go/internal/handler/http/response"
)

type InspectionHandler interface {
	RecordResult(w http.ResponseWriter, r *http.Request)
	UpdateResult(w http.ResponseWriter, r *http.Request)
	GetResult(w http.ResponseWriter, r *http.Request)
	ListResults(w http.ResponseWriter, r *http.Request)
	DeleteResult(w http.ResponseWriter, r *http.Request)
}

type InspectionHandlerImpl struct {
	inspectionService inspection.InspectionService
}

func NewInspectionHandler(inspectionService inspection.InspectionService) InspectionHandler {
	return &InspectionHandlerImpl{inspectionService: inspectionService}
}

// RecordResult implements InspectionHandler.
func (h *InspectionHandlerImpl) RecordResult(w http.ResponseWriter, r *http.Request) {
	var req inspection.RecordResultRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordResult decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.inspectionService.RecordResult(r.Context(), req)
	if err != nil {
		slog.Error("RecordResult service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Inspection result recorded", created)
}

// UpdateResult implements InspectionHandler.
func (h *InspectionHandlerImpl) UpdateResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req inspection.UpdateResultRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateResult decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.inspectionService.UpdateResult(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateResult service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Inspection result updated", updated)
}

// GetResult implements InspectionHandler.
func (h *InspectionHandlerImpl) GetResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.inspectionService.GetResult(r.Context(), id)
	if err != nil {
		slog.Error("GetResult service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListResults implements InspectionHandler.
func (h *InspectionHandlerImpl) ListResults(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	results, err := h.inspectionService.ListResults(r.Context(), limit, offset)
	if err != nil {
		slog.Error("ListResults service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteResult implements InspectionHandler.
func (h *InspectionHandlerImpl) DeleteResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.inspectionService.DeleteResult(r.Context(), id); err != nil {
		slog.Error("DeleteResult service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Inspection result deleted", nil)
}
