package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	// ChangePassword rotates the caller's own password. The current
	// password must verify and the new one must differ.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	// ResetPassword lets a tenant admin set a new password for a user of
	// the same tenant. Re-using the current password is rejected.
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
