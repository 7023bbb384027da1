package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid employee code or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrSamePassword        = errors.New("new password must differ from the current one")
)
