package postgresql

import (
	"context"
	"time"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/inspection"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type resultRepositoryImpl struct {
	db *database.DB
}

func NewResultRepository(db *database.DB) inspection.ResultRepository {
	return &resultRepositoryImpl{db: db}
}

const resultColumns = `id, inspection_id, inspector_id, shift_timing_id,
	measured_value, go_no_go, inspection_date, inspection_hour,
	created_by, updated_by, created_at, updated_at`

func scanResult(row pgx.Row) (inspection.Result, error) {
	var res inspection.Result
	err := row.Scan(
		&res.ID,
		&res.InspectionID,
		&res.InspectorID,
		&res.ShiftTimingID,
		&res.MeasuredValue,
		&res.GoNoGo,
		&res.InspectionDate,
		&res.InspectionHour,
		&res.CreatedBy,
		&res.UpdatedBy,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	return res, err
}

// Create implements inspection.ResultRepository.
func (r *resultRepositoryImpl) Create(ctx context.Context, res inspection.Result) (inspection.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO inspection_results (inspection_id, inspector_id, shift_timing_id,
			measured_value, go_no_go, inspection_date, inspection_hour, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + resultColumns

	return scanResult(q.QueryRow(ctx, query,
		res.InspectionID,
		res.InspectorID,
		res.ShiftTimingID,
		res.MeasuredValue,
		res.GoNoGo,
		res.InspectionDate,
		res.InspectionHour,
		res.CreatedBy,
		res.UpdatedBy,
	))
}

// GetByID implements inspection.ResultRepository. Tenant scope runs through
// inspection -> drawing -> product.
func (r *resultRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (inspection.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT res.id, res.inspection_id, res.inspector_id, res.shift_timing_id,
			res.measured_value, res.go_no_go, res.inspection_date, res.inspection_hour,
			res.created_by, res.updated_by, res.created_at, res.updated_at
		FROM inspection_results res
		JOIN product_inspections i ON i.id = res.inspection_id
		JOIN product_drawings d ON d.id = i.drawing_id
		JOIN products p ON p.id = d.product_id
		WHERE res.id = $1 AND p.tenant_id = $2
	`
	return scanResult(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements inspection.ResultRepository.
func (r *resultRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string, limit, offset int) ([]inspection.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT res.id, res.inspection_id, res.inspector_id, res.shift_timing_id,
			res.measured_value, res.go_no_go, res.inspection_date, res.inspection_hour,
			res.created_by, res.updated_by, res.created_at, res.updated_at
		FROM inspection_results res
		JOIN product_inspections i ON i.id = res.inspection_id
		JOIN product_drawings d ON d.id = i.drawing_id
		JOIN products p ON p.id = d.product_id
		WHERE p.tenant_id = $1
		ORDER BY res.inspection_date DESC, res.inspection_hour DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []inspection.Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// CountForShiftInstance implements inspection.ResultRepository.
func (r *resultRepositoryImpl) CountForShiftInstance(ctx context.Context, shiftTimingID string, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM inspection_results
		WHERE shift_timing_id = $1 AND inspection_date = $2
	`
	var count int
	err := q.QueryRow(ctx, query, shiftTimingID, date).Scan(&count)
	return count, err
}

// ExistsTriple implements inspection.ResultRepository.
func (r *resultRepositoryImpl) ExistsTriple(ctx context.Context, inspectionID string, date time.Time, hour int, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM inspection_results
			WHERE inspection_id = $1 AND inspection_date = $2 AND inspection_hour = $3
				AND ($4 = '' OR id <> $4::uuid)
		)
	`
	var exists bool
	err := q.QueryRow(ctx, query, inspectionID, date, hour, excludeID).Scan(&exists)
	return exists, err
}

// Update implements inspection.ResultRepository.
func (r *resultRepositoryImpl) Update(ctx context.Context, res inspection.Result) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE inspection_results
		SET measured_value = $1, go_no_go = $2, inspection_hour = $3, updated_by = $4, updated_at = NOW()
		WHERE id = $5
	`
	tag, err := q.Exec(ctx, query, res.MeasuredValue, res.GoNoGo, res.InspectionHour, res.UpdatedBy, res.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete implements inspection.ResultRepository.
func (r *resultRepositoryImpl) Delete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM inspection_results res
		USING product_inspections i, product_drawings d, products p
		WHERE res.id = $1
			AND i.id = res.inspection_id AND d.id = i.drawing_id
			AND p.id = d.product_id AND p.tenant_id = $2
	`
	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
