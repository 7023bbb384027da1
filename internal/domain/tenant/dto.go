package tenant

import (
	"strings"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/validator"
)

// CreateUserRequest registers a new user under the caller's tenant. The
// employee code is the bare numeric part; the service prefixes it with the
// tenant code.
type CreateUserRequest struct {
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Password     string  `json:"password"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	} else if !validator.IsNumeric(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must be numeric; it is prefixed with the tenant code automatically",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsInSlice(r.Role, user.RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: " + strings.Join(user.RoleValues, ", "),
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID           string  `json:"id"`
	TenantID     string  `json:"tenant_id"`
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	IsActive     bool    `json:"is_active"`
	CreatedAt    string  `json:"created_at"`
}

// TenantInput describes a tenant to provision. The code is stored
// uppercase; it becomes the prefix of every employee code in the tenant.
type TenantInput struct {
	TenantName string `json:"tenant_name"`
	TenantCode string `json:"tenant_code"`
	Address    string `json:"address"`
}

// AdminUserInput is the first user of a freshly provisioned tenant. The
// role is always admin, so none is accepted here.
type AdminUserInput struct {
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Password     string  `json:"password"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
}

// CreateTenantRequest provisions a tenant together with its first admin.
// The same shape serves the one-time bootstrap and admin-driven tenant
// creation.
type CreateTenantRequest struct {
	Tenant TenantInput    `json:"tenant"`
	Admin  AdminUserInput `json:"admin"`
}

func (r *CreateTenantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Tenant.TenantName) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant.tenant_name",
			Message: "tenant_name is required",
		})
	}
	if !validator.IsValidTenantCode(strings.ToUpper(r.Tenant.TenantCode)) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant.tenant_code",
			Message: "tenant_code must be 3-10 letters or digits",
		})
	}
	if validator.IsEmpty(r.Admin.EmployeeCode) || !validator.IsNumeric(r.Admin.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin.employee_code",
			Message: "employee_code must be numeric; it is prefixed with the tenant code automatically",
		})
	}
	if validator.IsEmpty(r.Admin.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin.name",
			Message: "name is required",
		})
	}
	if len(r.Admin.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "admin.password",
			Message: "password must be at least 8 characters long",
		})
	}
	if r.Admin.Email != nil && !validator.IsValidEmail(*r.Admin.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "admin.email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ChangeRoleRequest moves an existing user of the caller's tenant to a new
// role.
type ChangeRoleRequest struct {
	EmployeeCode string `json:"employee_code"`
	NewRole      string `json:"new_role"`
}

func (r *ChangeRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(strings.ToUpper(r.EmployeeCode)) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must look like TENANT-1234",
		})
	}
	if !validator.IsInSlice(r.NewRole, user.RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_role",
			Message: "new_role must be one of: " + strings.Join(user.RoleValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TenantResponse struct {
	ID         string `json:"id"`
	TenantName string `json:"tenant_name"`
	TenantCode string `json:"tenant_code"`
	Address    string `json:"address"`
	IsActive   bool   `json:"is_active"`
}

type CreateTenantResponse struct {
	Tenant TenantResponse `json:"tenant"`
	Admin  UserResponse   `json:"admin"`
}
