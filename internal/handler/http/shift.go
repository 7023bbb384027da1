package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
	"github.com/fabtrack/shopfloor-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	CreateShifts(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// CreateShifts implements ShiftHandler.
func (h *ShiftHandlerImpl) CreateShifts(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShifts decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.CreateShifts(r.Context(), req)
	if err != nil {
		slog.Error("CreateShifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift batch processed", "created", len(result.Created), "skipped", len(result.Skipped))
	response.Created(w, "Shifts processed", result)
}

// ListShifts implements ShiftHandler.
func (h *ShiftHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ListShifts(r.Context())
	if err != nil {
		slog.Error("ListShifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// DeleteShift implements ShiftHandler.
func (h *ShiftHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.shiftService.DeleteShift(r.Context(), id); err != nil {
		slog.Error("DeleteShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}
