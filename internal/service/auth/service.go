package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/auth"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/jwt"
	"github.com/fabtrack/shopfloor-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.RefreshTokenRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, refreshTokenRepository postgresql.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

// Login implements auth.AuthService. The employee code carries the tenant
// code prefix, so it resolves the user and the tenant in one lookup.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmployeeCode(ctx, strings.ToUpper(req.EmployeeCode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by employee code: %w", err)
	}

	if !userData.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	tenantCode := tenantCodeOf(userData.EmployeeCode)

	var resp auth.LoginResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(
			userData.ID, userData.TenantID, tenantCode, userData.EmployeeCode,
			string(userData.Role), userData.IsAdmin(),
		)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, userData.ID, resp.RefreshToken, resp.RefreshTokenExpiresIn); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	resp.TokenType = "Bearer"
	return resp, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	revoked, err := a.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := jwtauth.VerifyToken(a.Service.JWTAuth(), refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if typ, ok := token.Get("type"); !ok || typ != "refresh" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	userID, ok := token.Get("user_id")
	if !ok {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	userIDStr, ok := userID.(string)
	if !ok || userIDStr == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByUserID(ctx, userIDStr)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.RefreshResponse{}, auth.ErrUserNotFound
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsActive {
		return auth.RefreshResponse{}, user.ErrUserInactive
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(
		userData.ID, userData.TenantID, tenantCodeOf(userData.EmployeeCode),
		userData.EmployeeCode, string(userData.Role), userData.IsAdmin(),
	)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
		TokenType:            "Bearer",
	}, nil
}

// Logout implements auth.AuthService. Revocation is recorded both in the
// database and in the in-process cache the middleware consults.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := a.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

// ChangePassword implements auth.AuthService. The caller rotates their own
// password; the stored one must verify first.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}
	callerID, ok := claims["user_id"].(string)
	if !ok || callerID == "" {
		return fmt.Errorf("user_id not found in token")
	}

	userData, err := a.UserRepository.GetByUserID(ctx, callerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsActive {
		return user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.OldPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}
	if req.NewPassword == req.OldPassword {
		return auth.ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.UserRepository.UpdatePassword(ctx, userData.ID, string(hash), callerID)
}

// ResetPassword implements auth.AuthService. Admin only, same tenant, and
// the new password must differ from the stored one.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return fmt.Errorf("tenant_id not found in token")
	}
	callerID, ok := claims["user_id"].(string)
	if !ok || callerID == "" {
		return fmt.Errorf("user_id not found in token")
	}
	if isAdmin, ok := claims["is_admin"].(bool); !ok || !isAdmin {
		return user.ErrAdminPrivilegeRequired
	}

	target, err := a.UserRepository.GetByEmployeeCode(ctx, strings.ToUpper(req.EmployeeCode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user by employee code: %w", err)
	}
	if target.TenantID != tenantID {
		return auth.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(target.PasswordHash), []byte(req.NewPassword)) == nil {
		return auth.ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.UserRepository.UpdatePassword(ctx, target.ID, string(hash), callerID)
}

// tenantCodeOf returns the tenant code prefix of a full employee code.
func tenantCodeOf(employeeCode string) string {
	if idx := strings.IndexByte(employeeCode, '-'); idx > 0 {
		return employeeCode[:idx]
	}
	return employeeCode
}
