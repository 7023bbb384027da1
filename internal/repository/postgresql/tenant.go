package postgresql

import (
	"context"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/tenant"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type tenantRepositoryImpl struct {
	db *database.DB
}

func NewTenantRepository(db *database.DB) tenant.TenantRepository {
	return &tenantRepositoryImpl{db: db}
}

const tenantColumns = `id, tenant_name, tenant_code, address, is_verified,
	is_active, created_by, updated_by, created_at, updated_at`

func scanTenant(row pgx.Row) (tenant.Tenant, error) {
	var t tenant.Tenant
	err := row.Scan(
		&t.ID,
		&t.TenantName,
		&t.TenantCode,
		&t.Address,
		&t.IsVerified,
		&t.IsActive,
		&t.CreatedBy,
		&t.UpdatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

// Create implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) Create(ctx context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tenants (tenant_name, tenant_code, address, is_verified,
			is_active, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + tenantColumns

	return scanTenant(q.QueryRow(ctx, query,
		t.TenantName,
		t.TenantCode,
		t.Address,
		t.IsVerified,
		t.IsActive,
		t.CreatedBy,
		t.UpdatedBy,
	))
}

// GetByID implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) GetByID(ctx context.Context, id string) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	return scanTenant(q.QueryRow(ctx, query, id))
}

// GetByCode implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) GetByCode(ctx context.Context, tenantCode string) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE tenant_code = $1`
	return scanTenant(q.QueryRow(ctx, query, tenantCode))
}
