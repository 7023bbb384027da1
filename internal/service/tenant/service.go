package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/tenant"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/fabtrack/shopfloor-backend-go/internal/repository/postgresql"
)

type tenantServiceImpl struct {
	tenantRepo tenant.TenantRepository
	userRepo   user.UserRepository

	// withTx is swappable so provisioning can be tested without a pool.
	withTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewTenantService(db *database.DB, tenantRepo tenant.TenantRepository, userRepo user.UserRepository) tenant.TenantService {
	return &tenantServiceImpl{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		withTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Bootstrap implements tenant.TenantService. No token is involved; the
// operation is only available while the user table is empty, which makes it
// safe to expose unauthenticated for first-run setup.
func (s *tenantServiceImpl) Bootstrap(ctx context.Context, req tenant.CreateTenantRequest) (tenant.CreateTenantResponse, error) {
	if err := req.Validate(); err != nil {
		return tenant.CreateTenantResponse{}, err
	}

	populated, err := s.userRepo.HasAny(ctx)
	if err != nil {
		return tenant.CreateTenantResponse{}, fmt.Errorf("failed to check existing users: %w", err)
	}
	if populated {
		return tenant.CreateTenantResponse{}, tenant.ErrAlreadyBootstrapped
	}

	return s.provision(ctx, req, "system")
}

// CreateTenant implements tenant.TenantService. An admin provisions a new
// tenant together with that tenant's first admin user.
func (s *tenantServiceImpl) CreateTenant(ctx context.Context, req tenant.CreateTenantRequest) (tenant.CreateTenantResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return tenant.CreateTenantResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if isAdmin, ok := claims["is_admin"].(bool); !ok || !isAdmin {
		return tenant.CreateTenantResponse{}, user.ErrAdminPrivilegeRequired
	}
	callerID, _ := claims["user_id"].(string)

	if err := req.Validate(); err != nil {
		return tenant.CreateTenantResponse{}, err
	}

	return s.provision(ctx, req, callerID)
}

// provision creates the tenant row and its first admin in one transaction.
func (s *tenantServiceImpl) provision(ctx context.Context, req tenant.CreateTenantRequest, createdBy string) (tenant.CreateTenantResponse, error) {
	tenantCode := strings.ToUpper(req.Tenant.TenantCode)

	if _, err := s.tenantRepo.GetByCode(ctx, tenantCode); err == nil {
		return tenant.CreateTenantResponse{}, tenant.ErrTenantCodeExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return tenant.CreateTenantResponse{}, fmt.Errorf("failed to check tenant code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return tenant.CreateTenantResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var resp tenant.CreateTenantResponse
	err = s.withTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err := s.tenantRepo.Create(txCtx, tenant.Tenant{
			TenantName: req.Tenant.TenantName,
			TenantCode: tenantCode,
			Address:    req.Tenant.Address,
			IsVerified: true,
			IsActive:   true,
			CreatedBy:  createdBy,
			UpdatedBy:  createdBy,
		})
		if err != nil {
			return err
		}

		admin, err := s.userRepo.Create(txCtx, user.User{
			TenantID:     created.ID,
			Role:         user.RoleAdmin,
			EmployeeCode: tenantCode + "-" + req.Admin.EmployeeCode,
			Name:         req.Admin.Name,
			Phone:        req.Admin.Phone,
			Email:        req.Admin.Email,
			PasswordHash: string(hash),
			IsVerified:   true,
			IsActive:     true,
			CreatedBy:    createdBy,
			UpdatedBy:    createdBy,
		})
		if err != nil {
			return err
		}

		resp = tenant.CreateTenantResponse{
			Tenant: tenant.TenantResponse{
				ID:         created.ID,
				TenantName: created.TenantName,
				TenantCode: created.TenantCode,
				Address:    created.Address,
				IsActive:   created.IsActive,
			},
			Admin: toUserResponse(admin),
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return tenant.CreateTenantResponse{}, tenant.ErrTenantCodeExists
		}
		return tenant.CreateTenantResponse{}, fmt.Errorf("failed to provision tenant: %w", err)
	}

	return resp, nil
}

// ChangeRole implements tenant.TenantService. Admin only, same tenant; the
// target must not already hold the requested role.
func (s *tenantServiceImpl) ChangeRole(ctx context.Context, req tenant.ChangeRoleRequest) (tenant.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return tenant.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return tenant.UserResponse{}, fmt.Errorf("tenant_id not found in token")
	}
	callerID, _ := claims["user_id"].(string)

	if err := req.Validate(); err != nil {
		return tenant.UserResponse{}, err
	}

	target, err := s.userRepo.GetByEmployeeCode(ctx, strings.ToUpper(req.EmployeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tenant.UserResponse{}, user.ErrUserNotFound
		}
		return tenant.UserResponse{}, fmt.Errorf("failed to get user by employee code: %w", err)
	}
	if target.TenantID != tenantID {
		return tenant.UserResponse{}, user.ErrUserNotFound
	}

	newRole := user.Role(req.NewRole)
	if target.Role == newRole {
		return tenant.UserResponse{}, user.ErrSameRole
	}

	if err := s.userRepo.UpdateRole(ctx, target.ID, tenantID, newRole, callerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tenant.UserResponse{}, user.ErrUserNotFound
		}
		return tenant.UserResponse{}, fmt.Errorf("failed to update role: %w", err)
	}

	target.Role = newRole
	return toUserResponse(target), nil
}

// CreateUser implements tenant.TenantService. The stored employee code is
// the tenant code joined to the numeric code from the request.
func (s *tenantServiceImpl) CreateUser(ctx context.Context, req tenant.CreateUserRequest) (tenant.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return tenant.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return tenant.UserResponse{}, fmt.Errorf("tenant_id not found in token")
	}
	tenantCode, ok := claims["tenant_code"].(string)
	if !ok || tenantCode == "" {
		return tenant.UserResponse{}, fmt.Errorf("tenant_code not found in token")
	}
	callerID, _ := claims["user_id"].(string)

	if err := req.Validate(); err != nil {
		return tenant.UserResponse{}, err
	}

	employeeCode := tenantCode + "-" + req.EmployeeCode

	if _, err := s.userRepo.GetByEmployeeCode(ctx, employeeCode); err == nil {
		return tenant.UserResponse{}, user.ErrEmployeeCodeExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return tenant.UserResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if req.Email != nil {
		if _, err := s.userRepo.GetByEmail(ctx, tenantID, *req.Email); err == nil {
			return tenant.UserResponse{}, user.ErrEmailExists
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return tenant.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return tenant.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		TenantID:     tenantID,
		Role:         user.Role(req.Role),
		EmployeeCode: employeeCode,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedBy:    callerID,
		UpdatedBy:    callerID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return tenant.UserResponse{}, user.ErrEmployeeCodeExists
			}
		}
		return tenant.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(created), nil
}

// ListUsers implements tenant.TenantService.
func (s *tenantServiceImpl) ListUsers(ctx context.Context) ([]tenant.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return nil, fmt.Errorf("tenant_id not found in token")
	}

	users, err := s.userRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]tenant.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses, nil
}

// GetMyTenant implements tenant.TenantService.
func (s *tenantServiceImpl) GetMyTenant(ctx context.Context) (tenant.TenantResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return tenant.TenantResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return tenant.TenantResponse{}, fmt.Errorf("tenant_id not found in token")
	}

	t, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tenant.TenantResponse{}, tenant.ErrTenantNotFound
		}
		return tenant.TenantResponse{}, err
	}

	return tenant.TenantResponse{
		ID:         t.ID,
		TenantName: t.TenantName,
		TenantCode: t.TenantCode,
		Address:    t.Address,
		IsActive:   t.IsActive,
	}, nil
}

func toUserResponse(u user.User) tenant.UserResponse {
	return tenant.UserResponse{
		ID:           u.ID,
		TenantID:     u.TenantID,
		EmployeeCode: u.EmployeeCode,
		Name:         u.Name,
		Role:         string(u.Role),
		Phone:        u.Phone,
		Email:        u.Email,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}
