package inspection

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/inspection"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/product"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id, tenantID string) (user.User, error) {
	if u, ok := f.users[id]; ok && u.TenantID == tenantID {
		return u, nil
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByUserID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmployeeCode(ctx context.Context, employeeCode string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, tenantID, email string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByTenantID(ctx context.Context, tenantID string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) HasAny(ctx context.Context) (bool, error) {
	return len(f.users) > 0, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash, updatedBy string) error {
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, userID, tenantID string, role user.Role, updatedBy string) error {
	return nil
}

type fakeInspectionRepo struct {
	called bool
}

func (f *fakeInspectionRepo) Create(ctx context.Context, i product.Inspection, tenantID string) (product.Inspection, error) {
	return i, nil
}

func (f *fakeInspectionRepo) GetByID(ctx context.Context, id, tenantID string) (product.Inspection, error) {
	f.called = true
	return product.Inspection{}, pgx.ErrNoRows
}

func (f *fakeInspectionRepo) GetByDrawingID(ctx context.Context, drawingID, tenantID string) ([]product.Inspection, error) {
	return nil, nil
}

func (f *fakeInspectionRepo) Delete(ctx context.Context, id, tenantID string) error {
	return nil
}

type fakeTimingRepo struct{}

func (f *fakeTimingRepo) Create(ctx context.Context, t shift.ShiftTiming) (shift.ShiftTiming, error) {
	return t, nil
}

func (f *fakeTimingRepo) GetByID(ctx context.Context, id, tenantID string) (shift.ShiftTiming, error) {
	return shift.ShiftTiming{}, pgx.ErrNoRows
}

func (f *fakeTimingRepo) GetByTenantID(ctx context.Context, tenantID string) ([]shift.ShiftTiming, error) {
	return nil, nil
}

func (f *fakeTimingRepo) GetByShiftID(ctx context.Context, tenantShiftID string) ([]shift.ShiftTiming, error) {
	return nil, nil
}

type fakeResultRepo struct{}

func (f *fakeResultRepo) Create(ctx context.Context, r inspection.Result) (inspection.Result, error) {
	return r, nil
}

func (f *fakeResultRepo) GetByID(ctx context.Context, id, tenantID string) (inspection.Result, error) {
	return inspection.Result{}, pgx.ErrNoRows
}

func (f *fakeResultRepo) GetByTenantID(ctx context.Context, tenantID string, limit, offset int) ([]inspection.Result, error) {
	return nil, nil
}

func (f *fakeResultRepo) CountForShiftInstance(ctx context.Context, shiftTimingID string, date time.Time) (int, error) {
	return 0, nil
}

func (f *fakeResultRepo) ExistsTriple(ctx context.Context, inspectionID string, date time.Time, hour int, excludeID string) (bool, error) {
	return false, nil
}

func (f *fakeResultRepo) Update(ctx context.Context, r inspection.Result) error {
	return nil
}

func (f *fakeResultRepo) Delete(ctx context.Context, id, tenantID string) error {
	return nil
}

func authedContext(t *testing.T) context.Context {
	t.Helper()
	tok := jwt.New()
	require.NoError(t, tok.Set("tenant_id", "tenant-1"))
	require.NoError(t, tok.Set("user_id", "user-1"))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func TestRecordResultRejectsInspectorWithoutInspectionRole(t *testing.T) {
	// An operator exists under the tenant but may not submit inspection
	// results; resolution fails before the inspection is even looked up.
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"user-2": {ID: "user-2", TenantID: "tenant-1", Role: user.RoleOperator, IsActive: true},
	}}
	inspectionRepo := &fakeInspectionRepo{}
	svc := NewInspectionService(&fakeResultRepo{}, inspectionRepo, &fakeTimingRepo{}, userRepo)

	measured := 10.5
	_, err := svc.RecordResult(authedContext(t), inspection.RecordResultRequest{
		InspectionID:   "insp-1",
		InspectorID:    "user-2",
		ShiftTimingID:  "st-1",
		MeasuredValue:  &measured,
		InspectionDate: "2026-03-10",
		InspectionHour: 9,
	})

	assert.ErrorIs(t, err, inspection.ErrInspectorNotFound)
	assert.False(t, inspectionRepo.called, "inspection must not be resolved for an ineligible inspector")
}

func TestRecordResultUnknownInspector(t *testing.T) {
	svc := NewInspectionService(&fakeResultRepo{}, &fakeInspectionRepo{}, &fakeTimingRepo{}, &fakeUserRepo{users: map[string]user.User{}})

	goNoGo := true
	_, err := svc.RecordResult(authedContext(t), inspection.RecordResultRequest{
		InspectionID:   "insp-1",
		InspectorID:    "nobody",
		ShiftTimingID:  "st-1",
		GoNoGo:         &goNoGo,
		InspectionDate: "2026-03-10",
		InspectionHour: 9,
	})

	assert.ErrorIs(t, err, inspection.ErrInspectorNotFound)
}
