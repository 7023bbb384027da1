package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmployeeCodeExists     = errors.New("employee code already registered")
	ErrEmailExists            = errors.New("email already registered in this tenant")
	ErrUserInactive           = errors.New("user account is inactive")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrInvalidRole            = errors.New("invalid role")
	ErrSameRole               = errors.New("user already holds this role")
)
