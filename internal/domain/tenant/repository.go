package tenant

import "context"

type TenantRepository interface {
	Create(ctx context.Context, t Tenant) (Tenant, error)
	GetByID(ctx context.Context, id string) (Tenant, error)
	GetByCode(ctx context.Context, tenantCode string) (Tenant, error)
}
