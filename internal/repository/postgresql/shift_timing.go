package postgresql

import (
	"context"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftTimingRepositoryImpl struct {
	db *database.DB
}

func NewShiftTimingRepository(db *database.DB) shift.ShiftTimingRepository {
	return &shiftTimingRepositoryImpl{db: db}
}

// Windows live in TIME columns; they cross the wire as HH:MM strings and are
// parsed back into clock minutes on scan.
const shiftTimingColumns = `id, tenant_shift_id, weekday,
	to_char(shift_start, 'HH24:MI'), to_char(shift_end, 'HH24:MI'),
	created_by, updated_by, created_at, updated_at`

func scanShiftTiming(row pgx.Row) (shift.ShiftTiming, error) {
	var t shift.ShiftTiming
	var start, end string
	err := row.Scan(
		&t.ID,
		&t.TenantShiftID,
		&t.Weekday,
		&start,
		&end,
		&t.CreatedBy,
		&t.UpdatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return shift.ShiftTiming{}, err
	}
	if t.Window.Start, err = shift.ParseClock(start); err != nil {
		return shift.ShiftTiming{}, err
	}
	if t.Window.End, err = shift.ParseClock(end); err != nil {
		return shift.ShiftTiming{}, err
	}
	return t, nil
}

// Create implements shift.ShiftTimingRepository.
func (r *shiftTimingRepositoryImpl) Create(ctx context.Context, t shift.ShiftTiming) (shift.ShiftTiming, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_timings (tenant_shift_id, weekday, shift_start, shift_end, created_by, updated_by)
		VALUES ($1, $2, $3::time, $4::time, $5, $6)
		RETURNING ` + shiftTimingColumns

	return scanShiftTiming(q.QueryRow(ctx, query,
		t.TenantShiftID,
		t.Weekday,
		t.Window.Start.String(),
		t.Window.End.String(),
		t.CreatedBy,
		t.UpdatedBy,
	))
}

// GetByID implements shift.ShiftTimingRepository. Tenant scope goes through
// the owning shift.
func (r *shiftTimingRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (shift.ShiftTiming, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT st.id, st.tenant_shift_id, st.weekday,
			to_char(st.shift_start, 'HH24:MI'), to_char(st.shift_end, 'HH24:MI'),
			st.created_by, st.updated_by, st.created_at, st.updated_at
		FROM shift_timings st
		JOIN tenant_shifts ts ON ts.id = st.tenant_shift_id
		WHERE st.id = $1 AND ts.tenant_id = $2
	`
	return scanShiftTiming(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements shift.ShiftTimingRepository.
func (r *shiftTimingRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]shift.ShiftTiming, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT st.id, st.tenant_shift_id, st.weekday,
			to_char(st.shift_start, 'HH24:MI'), to_char(st.shift_end, 'HH24:MI'),
			st.created_by, st.updated_by, st.created_at, st.updated_at
		FROM shift_timings st
		JOIN tenant_shifts ts ON ts.id = st.tenant_shift_id
		WHERE ts.tenant_id = $1
		ORDER BY st.weekday, st.shift_start
	`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShiftTimings(rows)
}

// GetByShiftID implements shift.ShiftTimingRepository.
func (r *shiftTimingRepositoryImpl) GetByShiftID(ctx context.Context, tenantShiftID string) ([]shift.ShiftTiming, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftTimingColumns + ` FROM shift_timings WHERE tenant_shift_id = $1 ORDER BY weekday`
	rows, err := q.Query(ctx, query, tenantShiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShiftTimings(rows)
}

func collectShiftTimings(rows pgx.Rows) ([]shift.ShiftTiming, error) {
	var timings []shift.ShiftTiming
	for rows.Next() {
		t, err := scanShiftTiming(rows)
		if err != nil {
			return nil, err
		}
		timings = append(timings, t)
	}
	return timings, rows.Err()
}
