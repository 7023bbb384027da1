package production

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/machinery"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/production"
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
	if u, ok := f.users[id]; ok {
		return u, nil
	}
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

type fakeTimingRepo struct {
	timings map[string]shift.ShiftTiming
	called  bool
}

func (f *fakeTimingRepo) Create(ctx context.Context, t shift.ShiftTiming) (shift.ShiftTiming, error) {
	return t, nil
}

func (f *fakeTimingRepo) GetByID(ctx context.Context, id, tenantID string) (shift.ShiftTiming, error) {
	f.called = true
	if t, ok := f.timings[id]; ok {
		return t, nil
	}
	return shift.ShiftTiming{}, pgx.ErrNoRows
}

func (f *fakeTimingRepo) GetByTenantID(ctx context.Context, tenantID string) ([]shift.ShiftTiming, error) {
	return nil, nil
}

func (f *fakeTimingRepo) GetByShiftID(ctx context.Context, tenantShiftID string) ([]shift.ShiftTiming, error) {
	return nil, nil
}

type fakeMoldMachineRepo struct {
	called bool
}

func (f *fakeMoldMachineRepo) Create(ctx context.Context, mm machinery.MoldMachine) (machinery.MoldMachine, error) {
	return mm, nil
}

func (f *fakeMoldMachineRepo) GetByID(ctx context.Context, id, tenantID string) (machinery.MoldMachine, error) {
	f.called = true
	return machinery.MoldMachine{}, pgx.ErrNoRows
}

func (f *fakeMoldMachineRepo) GetByTenantID(ctx context.Context, tenantID string) ([]machinery.MoldMachine, error) {
	return nil, nil
}

func (f *fakeMoldMachineRepo) Delete(ctx context.Context, id, tenantID string) error {
	return nil
}

type fakeLogRepo struct{}

func (f *fakeLogRepo) Create(ctx context.Context, l production.Log) (production.Log, error) {
	return l, nil
}

func (f *fakeLogRepo) GetByID(ctx context.Context, id, tenantID string) (production.Log, error) {
	return production.Log{}, pgx.ErrNoRows
}

func (f *fakeLogRepo) GetByTenantID(ctx context.Context, tenantID string, limit, offset int) ([]production.Log, error) {
	return nil, nil
}

func (f *fakeLogRepo) Exists(ctx context.Context, tenantID, shiftTimingID, moldMachineID string, date time.Time) (bool, error) {
	return false, nil
}

func (f *fakeLogRepo) CreateDowntimeEntries(ctx context.Context, entries []production.DowntimeEntry) error {
	return nil
}

func (f *fakeLogRepo) CreateRejectionEntries(ctx context.Context, entries []production.RejectionEntry) error {
	return nil
}

func (f *fakeLogRepo) GetDowntimeEntries(ctx context.Context, productionLogID string) ([]production.DowntimeEntry, error) {
	return nil, nil
}

func (f *fakeLogRepo) GetRejectionEntries(ctx context.Context, productionLogID string) ([]production.RejectionEntry, error) {
	return nil, nil
}

func authedContext(t *testing.T) context.Context {
	t.Helper()
	tok := jwt.New()
	require.NoError(t, tok.Set("tenant_id", "tenant-1"))
	require.NoError(t, tok.Set("user_id", "user-1"))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func newTestService(timingRepo *fakeTimingRepo, mmRepo *fakeMoldMachineRepo, now time.Time) *productionServiceImpl {
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", TenantID: "tenant-1", Role: user.RoleOperator, IsActive: true},
	}}
	svc := NewProductionService(nil, &fakeLogRepo{}, timingRepo, mmRepo, userRepo).(*productionServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreateLogFutureDateCheckedBeforeResolution(t *testing.T) {
	// A future-dated payload must fail on the date alone, even when its
	// shift timing and mold-machine ids resolve to nothing.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	timingRepo := &fakeTimingRepo{}
	mmRepo := &fakeMoldMachineRepo{}
	svc := newTestService(timingRepo, mmRepo, now)

	_, err := svc.CreateLog(authedContext(t), production.CreateLogRequest{
		ShiftTimingID: "st-unknown",
		MoldMachineID: "mm-unknown",
		Date:          "2026-03-11",
		Actual:        90,
		Target:        100,
	})

	assert.ErrorIs(t, err, production.ErrFutureDate)
	assert.False(t, timingRepo.called, "shift timing must not be resolved for a future date")
	assert.False(t, mmRepo.called, "mold-machine must not be resolved for a future date")
}

func TestCreateLogUnknownMoldMachine(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	timingRepo := &fakeTimingRepo{timings: map[string]shift.ShiftTiming{
		"st-1": {ID: "st-1", Weekday: 2, Window: shift.TimeWindow{
			Start: shift.ClockOf(8, 0),
			End:   shift.ClockOf(16, 0),
		}},
	}}
	svc := newTestService(timingRepo, &fakeMoldMachineRepo{}, now)

	_, err := svc.CreateLog(authedContext(t), production.CreateLogRequest{
		ShiftTimingID: "st-1",
		MoldMachineID: "mm-unknown",
		Date:          "2026-03-10",
		Actual:        90,
		Target:        100,
	})

	assert.ErrorIs(t, err, production.ErrMoldMachineNotFound)
}
