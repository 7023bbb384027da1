package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/tenant"
	"github.com/fabtrack/shopfloor-backend-go/internal/handler/http/response"
)

type TenantHandler interface {
	Bootstrap(w http.ResponseWriter, r *http.Request)
	CreateTenant(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	ChangeRole(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetMyTenant(w http.ResponseWriter, r *http.Request)
}

type TenantHandlerImpl struct {
	tenantService tenant.TenantService
}

func NewTenantHandler(tenantService tenant.TenantService) TenantHandler {
	return &TenantHandlerImpl{tenantService: tenantService}
}

// Bootstrap implements TenantHandler.
func (h *TenantHandlerImpl) Bootstrap(w http.ResponseWriter, r *http.Request) {
	var req tenant.CreateTenantRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bootstrap decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.tenantService.Bootstrap(r.Context(), req)
	if err != nil {
		slog.Error("Bootstrap service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Bootstrap completed", "tenant_code", created.Tenant.TenantCode)
	response.Created(w, "Tenant and first admin created", created)
}

// CreateTenant implements TenantHandler.
func (h *TenantHandlerImpl) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req tenant.CreateTenantRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTenant decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.tenantService.CreateTenant(r.Context(), req)
	if err != nil {
		slog.Error("CreateTenant service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tenant created successfully", created)
}

// ChangeRole implements TenantHandler.
func (h *TenantHandlerImpl) ChangeRole(w http.ResponseWriter, r *http.Request) {
	var req tenant.ChangeRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangeRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.tenantService.ChangeRole(r.Context(), req)
	if err != nil {
		slog.Error("ChangeRole service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role updated", updated)
}

// CreateUser implements TenantHandler.
func (h *TenantHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req tenant.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.tenantService.CreateUser(r.Context(), req)
	if err != nil {
		slog.Error("CreateUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", created)
}

// ListUsers implements TenantHandler.
func (h *TenantHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.tenantService.ListUsers(r.Context())
	if err != nil {
		slog.Error("ListUsers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// GetMyTenant implements TenantHandler.
func (h *TenantHandlerImpl) GetMyTenant(w http.ResponseWriter, r *http.Request) {
	t, err := h.tenantService.GetMyTenant(r.Context())
	if err != nil {
		slog.Error("GetMyTenant service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}
