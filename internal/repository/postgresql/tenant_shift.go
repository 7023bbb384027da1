package postgresql

import (
	"context"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type tenantShiftRepositoryImpl struct {
	db *database.DB
}

func NewTenantShiftRepository(db *database.DB) shift.TenantShiftRepository {
	return &tenantShiftRepositoryImpl{db: db}
}

const tenantShiftColumns = `id, tenant_id, shift_name, created_by, updated_by, created_at, updated_at`

func scanTenantShift(row pgx.Row) (shift.TenantShift, error) {
	var s shift.TenantShift
	err := row.Scan(
		&s.ID,
		&s.TenantID,
		&s.ShiftName,
		&s.CreatedBy,
		&s.UpdatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.TenantShiftRepository.
func (r *tenantShiftRepositoryImpl) Create(ctx context.Context, s shift.TenantShift) (shift.TenantShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tenant_shifts (tenant_id, shift_name, created_by, updated_by)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + tenantShiftColumns

	return scanTenantShift(q.QueryRow(ctx, query, s.TenantID, s.ShiftName, s.CreatedBy, s.UpdatedBy))
}

// GetByName implements shift.TenantShiftRepository.
func (r *tenantShiftRepositoryImpl) GetByName(ctx context.Context, tenantID, shiftName string) (shift.TenantShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + tenantShiftColumns + ` FROM tenant_shifts WHERE tenant_id = $1 AND shift_name = $2`
	return scanTenantShift(q.QueryRow(ctx, query, tenantID, shiftName))
}

// GetByTenantID implements shift.TenantShiftRepository.
func (r *tenantShiftRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]shift.TenantShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + tenantShiftColumns + ` FROM tenant_shifts WHERE tenant_id = $1 ORDER BY shift_name`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.TenantShift
	for rows.Next() {
		s, err := scanTenantShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// Delete implements shift.TenantShiftRepository. Timings go with the shift
// via ON DELETE CASCADE.
func (r *tenantShiftRepositoryImpl) Delete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM tenant_shifts WHERE id = $1 AND tenant_id = $2`
	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
