package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id, tenantID string) (User, error)
	// GetByUserID looks a user up by primary key alone; auth flows use it
	// before any tenant scope is established.
	GetByUserID(ctx context.Context, id string) (User, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (User, error)
	GetByEmail(ctx context.Context, tenantID, email string) (User, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]User, error)
	// HasAny reports whether any user row exists at all; bootstrap runs
	// only against an empty table.
	HasAny(ctx context.Context) (bool, error)
	UpdatePassword(ctx context.Context, userID, passwordHash, updatedBy string) error
	UpdateRole(ctx context.Context, userID, tenantID string, role Role, updatedBy string) error
}
