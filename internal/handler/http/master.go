package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/master"
	"github.com/fabtrack/shopfloor-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	CreateDepartments(w http.ResponseWriter, r *http.Request)
	CreateOperations(w http.ResponseWriter, r *http.Request)
	CreateDefects(w http.ResponseWriter, r *http.Request)
	CreateDowntimes(w http.ResponseWriter, r *http.Request)

	LinkOperationDepartments(w http.ResponseWriter, r *http.Request)
	LinkDefectDepartments(w http.ResponseWriter, r *http.Request)
	LinkDowntimeDepartments(w http.ResponseWriter, r *http.Request)

	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListOperations(w http.ResponseWriter, r *http.Request)
	ListDefects(w http.ResponseWriter, r *http.Request)
	ListDowntimes(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// CreateDepartments implements MasterHandler.
func (h *MasterHandlerImpl) CreateDepartments(w http.ResponseWriter, r *http.Request) {
	var req master.BulkNamesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDepartments decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDepartments(r.Context(), req)
	if err != nil {
		slog.Error("CreateDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Departments created", result)
}

// CreateOperations implements MasterHandler.
func (h *MasterHandlerImpl) CreateOperations(w http.ResponseWriter, r *http.Request) {
	var req master.BulkNamesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOperations decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateOperations(r.Context(), req)
	if err != nil {
		slog.Error("CreateOperations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Operations created", result)
}

// CreateDefects implements MasterHandler.
func (h *MasterHandlerImpl) CreateDefects(w http.ResponseWriter, r *http.Request) {
	var req master.BulkNamesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDefects decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDefects(r.Context(), req)
	if err != nil {
		slog.Error("CreateDefects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Defects created", result)
}

// CreateDowntimes implements MasterHandler.
func (h *MasterHandlerImpl) CreateDowntimes(w http.ResponseWriter, r *http.Request) {
	var req master.BulkNamesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDowntimes decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateDowntimes(r.Context(), req)
	if err != nil {
		slog.Error("CreateDowntimes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Downtimes created", result)
}

// LinkOperationDepartments implements MasterHandler.
func (h *MasterHandlerImpl) LinkOperationDepartments(w http.ResponseWriter, r *http.Request) {
	var req master.LinkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("LinkOperationDepartments decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.LinkOperationDepartments(r.Context(), req)
	if err != nil {
		slog.Error("LinkOperationDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Operation-department links created", result)
}

// LinkDefectDepartments implements MasterHandler.
func (h *MasterHandlerImpl) LinkDefectDepartments(w http.ResponseWriter, r *http.Request) {
	var req master.LinkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("LinkDefectDepartments decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.LinkDefectDepartments(r.Context(), req)
	if err != nil {
		slog.Error("LinkDefectDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Defect-department links created", result)
}

// LinkDowntimeDepartments implements MasterHandler.
func (h *MasterHandlerImpl) LinkDowntimeDepartments(w http.ResponseWriter, r *http.Request) {
	var req master.LinkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("LinkDowntimeDepartments decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.LinkDowntimeDepartments(r.Context(), req)
	if err != nil {
		slog.Error("LinkDowntimeDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Downtime-department links created", result)
}

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	names, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, names)
}

// ListOperations implements MasterHandler.
func (h *MasterHandlerImpl) ListOperations(w http.ResponseWriter, r *http.Request) {
	names, err := h.masterService.ListOperations(r.Context())
	if err != nil {
		slog.Error("ListOperations service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, names)
}

// ListDefects implements MasterHandler.
func (h *MasterHandlerImpl) ListDefects(w http.ResponseWriter, r *http.Request) {
	names, err := h.masterService.ListDefects(r.Context())
	if err != nil {
		slog.Error("ListDefects service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, names)
}

// ListDowntimes implements MasterHandler.
func (h *MasterHandlerImpl) ListDowntimes(w http.ResponseWriter, r *http.Request) {
	names, err := h.masterService.ListDowntimes(r.Context())
	if err != nil {
		slog.Error("ListDowntimes service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, names)
}
