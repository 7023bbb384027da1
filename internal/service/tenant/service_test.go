package tenant

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/tenant"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
)

type fakeTenantRepo struct {
	byCode map[string]tenant.Tenant
}

func (f *fakeTenantRepo) Create(ctx context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	t.ID = "tenant-" + t.TenantCode
	f.byCode[t.TenantCode] = t
	return t, nil
}

func (f *fakeTenantRepo) GetByID(ctx context.Context, id string) (tenant.Tenant, error) {
	for _, t := range f.byCode {
		if t.ID == id {
			return t, nil
		}
	}
	return tenant.Tenant{}, pgx.ErrNoRows
}

func (f *fakeTenantRepo) GetByCode(ctx context.Context, tenantCode string) (tenant.Tenant, error) {
	if t, ok := f.byCode[tenantCode]; ok {
		return t, nil
	}
	return tenant.Tenant{}, pgx.ErrNoRows
}

type fakeUserRepo struct {
	byCode map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = "user-" + u.EmployeeCode
	f.byCode[u.EmployeeCode] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id, tenantID string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByUserID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmployeeCode(ctx context.Context, employeeCode string) (user.User, error) {
	if u, ok := f.byCode[employeeCode]; ok {
		return u, nil
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, tenantID, email string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByTenantID(ctx context.Context, tenantID string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) HasAny(ctx context.Context) (bool, error) {
	return len(f.byCode) > 0, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash, updatedBy string) error {
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, userID, tenantID string, role user.Role, updatedBy string) error {
	for code, u := range f.byCode {
		if u.ID == userID && u.TenantID == tenantID {
			u.Role = role
			f.byCode[code] = u
			return nil
		}
	}
	return pgx.ErrNoRows
}

func newTestService(tenantRepo *fakeTenantRepo, userRepo *fakeUserRepo) *tenantServiceImpl {
	svc := NewTenantService(nil, tenantRepo, userRepo).(*tenantServiceImpl)
	svc.withTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return fn(nil)
	}
	return svc
}

func adminContext(t *testing.T) context.Context {
	t.Helper()
	tok := jwt.New()
	require.NoError(t, tok.Set("tenant_id", "tenant-ACME"))
	require.NoError(t, tok.Set("user_id", "user-admin"))
	require.NoError(t, tok.Set("is_admin", true))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func TestBootstrapCreatesTenantAndAdmin(t *testing.T) {
	tenantRepo := &fakeTenantRepo{byCode: map[string]tenant.Tenant{}}
	userRepo := &fakeUserRepo{byCode: map[string]user.User{}}
	svc := newTestService(tenantRepo, userRepo)

	resp, err := svc.Bootstrap(context.Background(), tenant.CreateTenantRequest{
		Tenant: tenant.TenantInput{
			TenantName: "Acme Precision",
			TenantCode: "acme",
			Address:    "1 Forge Road",
		},
		Admin: tenant.AdminUserInput{
			EmployeeCode: "0001",
			Name:         "First Admin",
			Password:     "changeme123",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "ACME", resp.Tenant.TenantCode)
	assert.Equal(t, "ACME-0001", resp.Admin.EmployeeCode)
	assert.Equal(t, string(user.RoleAdmin), resp.Admin.Role)
	assert.Equal(t, resp.Tenant.ID, resp.Admin.TenantID)
}

func TestBootstrapRefusesOncePopulated(t *testing.T) {
	tenantRepo := &fakeTenantRepo{byCode: map[string]tenant.Tenant{}}
	userRepo := &fakeUserRepo{byCode: map[string]user.User{
		"ACME-0001": {ID: "user-1", TenantID: "tenant-ACME", EmployeeCode: "ACME-0001"},
	}}
	svc := newTestService(tenantRepo, userRepo)

	_, err := svc.Bootstrap(context.Background(), tenant.CreateTenantRequest{
		Tenant: tenant.TenantInput{TenantName: "Other", TenantCode: "OTHER"},
		Admin:  tenant.AdminUserInput{EmployeeCode: "0001", Name: "A", Password: "changeme123"},
	})

	assert.ErrorIs(t, err, tenant.ErrAlreadyBootstrapped)
}

func TestCreateTenantRejectsDuplicateCode(t *testing.T) {
	tenantRepo := &fakeTenantRepo{byCode: map[string]tenant.Tenant{
		"ACME": {ID: "tenant-ACME", TenantCode: "ACME"},
	}}
	userRepo := &fakeUserRepo{byCode: map[string]user.User{}}
	svc := newTestService(tenantRepo, userRepo)

	_, err := svc.CreateTenant(adminContext(t), tenant.CreateTenantRequest{
		Tenant: tenant.TenantInput{TenantName: "Acme Again", TenantCode: "acme"},
		Admin:  tenant.AdminUserInput{EmployeeCode: "0001", Name: "A", Password: "changeme123"},
	})

	assert.ErrorIs(t, err, tenant.ErrTenantCodeExists)
}

func TestChangeRoleUpdatesUser(t *testing.T) {
	tenantRepo := &fakeTenantRepo{byCode: map[string]tenant.Tenant{}}
	userRepo := &fakeUserRepo{byCode: map[string]user.User{
		"ACME-0002": {ID: "user-2", TenantID: "tenant-ACME", EmployeeCode: "ACME-0002", Role: user.RoleOperator},
	}}
	svc := newTestService(tenantRepo, userRepo)

	resp, err := svc.ChangeRole(adminContext(t), tenant.ChangeRoleRequest{
		EmployeeCode: "ACME-0002",
		NewRole:      string(user.RoleSupervisor),
	})

	require.NoError(t, err)
	assert.Equal(t, string(user.RoleSupervisor), resp.Role)
	assert.Equal(t, user.RoleSupervisor, userRepo.byCode["ACME-0002"].Role)
}

func TestChangeRoleRejectsSameRole(t *testing.T) {
	userRepo := &fakeUserRepo{byCode: map[string]user.User{
		"ACME-0002": {ID: "user-2", TenantID: "tenant-ACME", EmployeeCode: "ACME-0002", Role: user.RoleOperator},
	}}
	svc := newTestService(&fakeTenantRepo{byCode: map[string]tenant.Tenant{}}, userRepo)

	_, err := svc.ChangeRole(adminContext(t), tenant.ChangeRoleRequest{
		EmployeeCode: "ACME-0002",
		NewRole:      string(user.RoleOperator),
	})

	assert.ErrorIs(t, err, user.ErrSameRole)
}

func TestChangeRoleHidesForeignTenantUser(t *testing.T) {
	userRepo := &fakeUserRepo{byCode: map[string]user.User{
		"OTHER-0002": {ID: "user-9", TenantID: "tenant-OTHER", EmployeeCode: "OTHER-0002", Role: user.RoleOperator},
	}}
	svc := newTestService(&fakeTenantRepo{byCode: map[string]tenant.Tenant{}}, userRepo)

	_, err := svc.ChangeRole(adminContext(t), tenant.ChangeRoleRequest{
		EmployeeCode: "OTHER-0002",
		NewRole:      string(user.RoleSupervisor),
	})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
