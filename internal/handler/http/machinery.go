package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/machinery"
	"github.com/fabtrack/shopfloor-backend-go/internal/handler/http/response"
)

type MachineryHandler interface {
	CreateMachine(w http.ResponseWriter, r *http.Request)
	ListMachines(w http.ResponseWriter, r *http.Request)
	DeleteMachine(w http.ResponseWriter, r *http.Request)
	CreateMold(w http.ResponseWriter, r *http.Request)
	ListMolds(w http.ResponseWriter, r *http.Request)
	DeleteMold(w http.ResponseWriter, r *http.Request)
	CreateMoldMachine(w http.ResponseWriter, r *http.Request)
	ListMoldMachines(w http.ResponseWriter, r *http.Request)
	DeleteMoldMachine(w http.ResponseWriter, r *http.Request)
}

type MachineryHandlerImpl struct {
	machineryService machinery.MachineryService
}

func NewMachineryHandler(machineryService machinery.MachineryService) MachineryHandler {
	return &MachineryHandlerImpl{machineryService: machineryService}
}

// CreateMachine implements MachineryHandler.
func (h *MachineryHandlerImpl) CreateMachine(w http.ResponseWriter, r *http.Request) {
	var req machinery.CreateMachineRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateMachine decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.machineryService.CreateMachine(r.Context(), req)
	if err != nil {
		slog.Error("CreateMachine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Machine created", created)
}

// ListMachines implements MachineryHandler.
func (h *MachineryHandlerImpl) ListMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.machineryService.ListMachines(r.Context())
	if err != nil {
		slog.Error("ListMachines service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, machines)
}

// DeleteMachine implements MachineryHandler.
func (h *MachineryHandlerImpl) DeleteMachine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.machineryService.DeleteMachine(r.Context(), id); err != nil {
		slog.Error("DeleteMachine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Machine deleted", nil)
}

// CreateMold implements MachineryHandler.
func (h *MachineryHandlerImpl) CreateMold(w http.ResponseWriter, r *http.Request) {
	var req machinery.CreateMoldRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateMold decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.machineryService.CreateMold(r.Context(), req)
	if err != nil {
		slog.Error("CreateMold service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Mold created", created)
}

// ListMolds implements MachineryHandler.
func (h *MachineryHandlerImpl) ListMolds(w http.ResponseWriter, r *http.Request) {
	molds, err := h.machineryService.ListMolds(r.Context())
	if err != nil {
		slog.Error("ListMolds service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, molds)
}

// DeleteMold implements MachineryHandler.
func (h *MachineryHandlerImpl) DeleteMold(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.machineryService.DeleteMold(r.Context(), id); err != nil {
		slog.Error("DeleteMold service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Mold deleted", nil)
}

// CreateMoldMachine implements MachineryHandler.
func (h *MachineryHandlerImpl) CreateMoldMachine(w http.ResponseWriter, r *http.Request) {
	var req machinery.CreateMoldMachineRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateMoldMachine decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.machineryService.CreateMoldMachine(r.Context(), req)
	if err != nil {
		slog.Error("CreateMoldMachine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Mold-machine pairing created", created)
}

// ListMoldMachines implements MachineryHandler.
func (h *MachineryHandlerImpl) ListMoldMachines(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.machineryService.ListMoldMachines(r.Context())
	if err != nil {
		slog.Error("ListMoldMachines service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, pairings)
}

// DeleteMoldMachine implements MachineryHandler.
func (h *MachineryHandlerImpl) DeleteMoldMachine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.machineryService.DeleteMoldMachine(r.Context(), id); err != nil {
		slog.Error("DeleteMoldMachine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Mold-machine pairing deleted", nil)
}
