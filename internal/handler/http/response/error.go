package response

import (
	"errors"
	"net/http"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/auth"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/inspection"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/machinery"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/master"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/product"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/production"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/tenant"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Shift validation carries structured context
	var overlapErr *shift.OverlapError
	if errors.As(err, &overlapErr) {
		Conflict(w, overlapErr.Error())
		return
	}
	var budgetErr *shift.BudgetError
	if errors.As(err, &budgetErr) {
		BadRequest(w, budgetErr.Error(), nil)
		return
	}
	var dupWeekdayErr *shift.DuplicateWeekdayError
	if errors.As(err, &dupWeekdayErr) {
		BadRequest(w, dupWeekdayErr.Error(), nil)
		return
	}
	var windowErr *inspection.OutsideWindowError
	if errors.As(err, &windowErr) {
		BadRequest(w, windowErr.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrSamePassword):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrTenantNotFound):
		NotFound(w, "Tenant not found")

	// User / tenant domain errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User is inactive")
	case errors.Is(err, user.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered in this tenant")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrSameRole):
		Conflict(w, err.Error())
	case errors.Is(err, tenant.ErrTenantNotFound):
		NotFound(w, "Tenant not found")
	case errors.Is(err, tenant.ErrTenantCodeExists):
		Conflict(w, "Tenant code already exists")
	case errors.Is(err, tenant.ErrAlreadyBootstrapped):
		Conflict(w, err.Error())

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftTimingNotFound):
		NotFound(w, "Shift timing not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrNoTimings):
		BadRequest(w, "A shift needs at least one timing", nil)

	// Catalog domain errors
	case errors.Is(err, master.ErrNothingNew):
		Conflict(w, err.Error())
	case errors.Is(err, master.ErrNoLinksRemaining):
		Conflict(w, err.Error())
	case errors.Is(err, master.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, product.ErrDrawingNotFound):
		NotFound(w, "Drawing not found")
	case errors.Is(err, product.ErrInspectionNotFound):
		NotFound(w, "Inspection not found")
	case errors.Is(err, product.ErrProductNoExists):
		Conflict(w, "Product number already exists")
	case errors.Is(err, product.ErrDrawingNoExists):
		Conflict(w, "Drawing number already exists for this product")
	case errors.Is(err, product.ErrInvalidLimits):
		BadRequest(w, err.Error(), nil)

	// Machinery domain errors
	case errors.Is(err, machinery.ErrMachineNotFound):
		NotFound(w, "Machine not found")
	case errors.Is(err, machinery.ErrMoldNotFound):
		NotFound(w, "Mold not found")
	case errors.Is(err, machinery.ErrMoldMachineNotFound):
		NotFound(w, "Mold-machine mapping not found")
	case errors.Is(err, machinery.ErrMachineNoExists):
		Conflict(w, "Machine number already exists")
	case errors.Is(err, machinery.ErrMoldNoExists):
		Conflict(w, "Mold number already exists")
	case errors.Is(err, machinery.ErrMoldMachineExists):
		Conflict(w, "Mold-machine mapping already exists")

	// Inspection result domain errors
	case errors.Is(err, inspection.ErrResultNotFound):
		NotFound(w, "Inspection result not found")
	case errors.Is(err, inspection.ErrInspectorNotFound):
		NotFound(w, "Inspector not found")
	case errors.Is(err, inspection.ErrInspectionNotFound):
		NotFound(w, "Inspection not found")
	case errors.Is(err, inspection.ErrShiftTimingNotFound):
		NotFound(w, "Shift timing not found")
	case errors.Is(err, inspection.ErrCapacityExceeded):
		Conflict(w, err.Error())
	case errors.Is(err, inspection.ErrDuplicateResult):
		Conflict(w, err.Error())

	// Production domain errors
	case errors.Is(err, production.ErrLogNotFound):
		NotFound(w, "Production log not found")
	case errors.Is(err, production.ErrOperatorNotFound):
		NotFound(w, "Operator not found")
	case errors.Is(err, production.ErrShiftTimingNotFound):
		NotFound(w, "Shift timing not found")
	case errors.Is(err, production.ErrMoldMachineNotFound):
		NotFound(w, "Mold-machine mapping not found")
	case errors.Is(err, production.ErrFutureDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, production.ErrShiftNotEnded):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, production.ErrDuplicateLog):
		Conflict(w, err.Error())
	case errors.Is(err, production.ErrTenantMismatch):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
