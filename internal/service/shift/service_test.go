package shift

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
)

type fakeShiftRepo struct {
	byName map[string]shift.TenantShift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.TenantShift) (shift.TenantShift, error) {
	s.ID = "shift-" + s.ShiftName
	f.byName[s.ShiftName] = s
	return s, nil
}

func (f *fakeShiftRepo) GetByName(ctx context.Context, tenantID, shiftName string) (shift.TenantShift, error) {
	if s, ok := f.byName[shiftName]; ok {
		return s, nil
	}
	return shift.TenantShift{}, pgx.ErrNoRows
}

func (f *fakeShiftRepo) GetByTenantID(ctx context.Context, tenantID string) ([]shift.TenantShift, error) {
	var out []shift.TenantShift
	for _, s := range f.byName {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id, tenantID string) error {
	for name, s := range f.byName {
		if s.ID == id {
			delete(f.byName, name)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeTimingRepo struct {
	timings []shift.ShiftTiming
}

func (f *fakeTimingRepo) Create(ctx context.Context, t shift.ShiftTiming) (shift.ShiftTiming, error) {
	t.ID = "timing"
	f.timings = append(f.timings, t)
	return t, nil
}

func (f *fakeTimingRepo) GetByID(ctx context.Context, id, tenantID string) (shift.ShiftTiming, error) {
	return shift.ShiftTiming{}, pgx.ErrNoRows
}

func (f *fakeTimingRepo) GetByTenantID(ctx context.Context, tenantID string) ([]shift.ShiftTiming, error) {
	return f.timings, nil
}

func (f *fakeTimingRepo) GetByShiftID(ctx context.Context, tenantShiftID string) ([]shift.ShiftTiming, error) {
	var out []shift.ShiftTiming
	for _, t := range f.timings {
		if t.TenantShiftID == tenantShiftID {
			out = append(out, t)
		}
	}
	return out, nil
}

func authedContext(t *testing.T) context.Context {
	t.Helper()
	tok := jwt.New()
	require.NoError(t, tok.Set("tenant_id", "tenant-1"))
	require.NoError(t, tok.Set("user_id", "user-1"))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func weekday(d int) *int { return &d }

func TestCreateShiftsSkipsExistingName(t *testing.T) {
	shiftRepo := &fakeShiftRepo{byName: map[string]shift.TenantShift{
		"morning": {ID: "shift-morning", ShiftName: "morning"},
	}}
	timingRepo := &fakeTimingRepo{}
	svc := NewShiftService(nil, shiftRepo, timingRepo)

	resp, err := svc.CreateShifts(authedContext(t), shift.CreateShiftsRequest{
		Shifts: []shift.ShiftInput{
			{ShiftName: "morning", Timings: []shift.TimingInput{
				{Weekday: weekday(1), ShiftStart: "08:00", ShiftEnd: "16:00"},
			}},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Created)
	assert.Equal(t, []string{"morning"}, resp.Skipped)
}

func TestCreateShiftsAllowsOverlapWithOtherShifts(t *testing.T) {
	// A second shift may share weekday time with a committed one; only the
	// daily budget bounds the total.
	shiftRepo := &fakeShiftRepo{byName: map[string]shift.TenantShift{}}
	timingRepo := &fakeTimingRepo{timings: []shift.ShiftTiming{
		{ID: "t1", Weekday: 1, Window: window(t, "08:00", "16:00")},
	}}
	svc := NewShiftService(nil, shiftRepo, timingRepo).(*shiftServiceImpl)
	svc.withTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return fn(nil)
	}

	resp, err := svc.CreateShifts(authedContext(t), shift.CreateShiftsRequest{
		Shifts: []shift.ShiftInput{
			{ShiftName: "mid", Timings: []shift.TimingInput{
				{Weekday: weekday(1), ShiftStart: "10:00", ShiftEnd: "12:00"},
			}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"mid"}, resp.Created)
	assert.Empty(t, resp.Skipped)
	assert.Len(t, timingRepo.timings, 2)
}

func TestCreateShiftsRejectsBudgetOverrun(t *testing.T) {
	shiftRepo := &fakeShiftRepo{byName: map[string]shift.TenantShift{}}
	timingRepo := &fakeTimingRepo{timings: []shift.ShiftTiming{
		{ID: "t1", Weekday: 2, Window: window(t, "00:00", "20:00")},
	}}
	svc := NewShiftService(nil, shiftRepo, timingRepo)

	_, err := svc.CreateShifts(authedContext(t), shift.CreateShiftsRequest{
		Shifts: []shift.ShiftInput{
			{ShiftName: "evening", Timings: []shift.TimingInput{
				{Weekday: weekday(2), ShiftStart: "20:00", ShiftEnd: "02:00"},
			}},
		},
	})

	var budgetErr *shift.BudgetError
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, 2, budgetErr.Weekday)
}

func TestCreateShiftsRejectsDuplicateWeekdayInOneShift(t *testing.T) {
	shiftRepo := &fakeShiftRepo{byName: map[string]shift.TenantShift{}}
	timingRepo := &fakeTimingRepo{}
	svc := NewShiftService(nil, shiftRepo, timingRepo)

	_, err := svc.CreateShifts(authedContext(t), shift.CreateShiftsRequest{
		Shifts: []shift.ShiftInput{
			{ShiftName: "double", Timings: []shift.TimingInput{
				{Weekday: weekday(3), ShiftStart: "08:00", ShiftEnd: "12:00"},
				{Weekday: weekday(3), ShiftStart: "13:00", ShiftEnd: "17:00"},
			}},
		},
	})

	var dupErr *shift.DuplicateWeekdayError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, 3, dupErr.Weekday)
	assert.Equal(t, "double", dupErr.ShiftName)
}

func TestCreateShiftsRejectsEmptyBatch(t *testing.T) {
	svc := NewShiftService(nil, &fakeShiftRepo{byName: map[string]shift.TenantShift{}}, &fakeTimingRepo{})

	_, err := svc.CreateShifts(authedContext(t), shift.CreateShiftsRequest{})
	assert.Error(t, err)
}

func TestBuildTimingsAutoAssignsWeekdays(t *testing.T) {
	timings, err := buildTimings(shift.ShiftInput{
		ShiftName: "auto",
		Timings: []shift.TimingInput{
			{ShiftStart: "08:00", ShiftEnd: "12:00"},
			{ShiftStart: "08:00", ShiftEnd: "12:00"},
			{ShiftStart: "08:00", ShiftEnd: "12:00"},
		},
	})
	require.NoError(t, err)
	require.Len(t, timings, 3)
	assert.Equal(t, 1, timings[0].Weekday)
	assert.Equal(t, 2, timings[1].Weekday)
	assert.Equal(t, 3, timings[2].Weekday)
}

func TestBuildTimingsEighthEntryWrapsToMonday(t *testing.T) {
	// The eighth unassigned timing cycles back to weekday 1, which then
	// collides with the first.
	inputs := make([]shift.TimingInput, 8)
	for i := range inputs {
		inputs[i] = shift.TimingInput{ShiftStart: "08:00", ShiftEnd: "10:00"}
	}

	_, err := buildTimings(shift.ShiftInput{ShiftName: "wrap", Timings: inputs})

	var dupErr *shift.DuplicateWeekdayError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, 1, dupErr.Weekday)
}

func window(t *testing.T, start, end string) shift.TimeWindow {
	t.Helper()
	s, err := shift.ParseClock(start)
	require.NoError(t, err)
	e, err := shift.ParseClock(end)
	require.NoError(t, err)
	return shift.TimeWindow{Start: s, End: e}
}
