package tenant

import "errors"

var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrTenantCodeExists    = errors.New("tenant code already registered")
	ErrTenantInactive      = errors.New("tenant is inactive")
	ErrTenantMismatch      = errors.New("user not authorized for this tenant")
	ErrAlreadyBootstrapped = errors.New("bootstrap already completed")
	ErrInvalidRequestData  = errors.New("invalid request data")
)
