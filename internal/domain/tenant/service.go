package tenant

import "context"

type TenantService interface {
	// Bootstrap provisions the very first tenant and its admin. It is
	// unauthenticated and refuses to run once any user exists.
	Bootstrap(ctx context.Context, req CreateTenantRequest) (CreateTenantResponse, error)
	// CreateTenant provisions a further tenant with its first admin.
	CreateTenant(ctx context.Context, req CreateTenantRequest) (CreateTenantResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	ChangeRole(ctx context.Context, req ChangeRoleRequest) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	GetMyTenant(ctx context.Context) (TenantResponse, error)
}
