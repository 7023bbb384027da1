package postgresql

import (
	"context"
	"time"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/production"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type logRepositoryImpl struct {
	db *database.DB
}

func NewLogRepository(db *database.DB) production.LogRepository {
	return &logRepositoryImpl{db: db}
}

const logColumns = `id, tenant_id, operator_id, shift_timing_id, mold_machine_id,
	date, actual, target, created_by, updated_by, created_at, updated_at`

func scanLog(row pgx.Row) (production.Log, error) {
	var l production.Log
	err := row.Scan(
		&l.ID,
		&l.TenantID,
		&l.OperatorID,
		&l.ShiftTimingID,
		&l.MoldMachineID,
		&l.Date,
		&l.Actual,
		&l.Target,
		&l.CreatedBy,
		&l.UpdatedBy,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// Create implements production.LogRepository.
func (r *logRepositoryImpl) Create(ctx context.Context, log production.Log) (production.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO production_logs (tenant_id, operator_id, shift_timing_id, mold_machine_id,
			date, actual, target, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + logColumns

	return scanLog(q.QueryRow(ctx, query,
		log.TenantID,
		log.OperatorID,
		log.ShiftTimingID,
		log.MoldMachineID,
		log.Date,
		log.Actual,
		log.Target,
		log.CreatedBy,
		log.UpdatedBy,
	))
}

// GetByID implements production.LogRepository.
func (r *logRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (production.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + logColumns + ` FROM production_logs WHERE id = $1 AND tenant_id = $2`
	return scanLog(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements production.LogRepository.
func (r *logRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string, limit, offset int) ([]production.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + logColumns + `
		FROM production_logs
		WHERE tenant_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []production.Log
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// Exists implements production.LogRepository.
func (r *logRepositoryImpl) Exists(ctx context.Context, tenantID, shiftTimingID, moldMachineID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM production_logs
			WHERE tenant_id = $1 AND shift_timing_id = $2 AND mold_machine_id = $3 AND date = $4
		)
	`
	var exists bool
	err := q.QueryRow(ctx, query, tenantID, shiftTimingID, moldMachineID, date).Scan(&exists)
	return exists, err
}

// CreateDowntimeEntries implements production.LogRepository.
func (r *logRepositoryImpl) CreateDowntimeEntries(ctx context.Context, entries []production.DowntimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO production_downtimes (production_log_id, downtime_id, duration_min)
		VALUES ($1, $2, $3)
	`
	for _, e := range entries {
		if _, err := q.Exec(ctx, query, e.ProductionLogID, e.DowntimeID, e.DurationMin); err != nil {
			return err
		}
	}
	return nil
}

// CreateRejectionEntries implements production.LogRepository.
func (r *logRepositoryImpl) CreateRejectionEntries(ctx context.Context, entries []production.RejectionEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO production_rejections (production_log_id, defect_id, quantity)
		VALUES ($1, $2, $3)
	`
	for _, e := range entries {
		if _, err := q.Exec(ctx, query, e.ProductionLogID, e.DefectID, e.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetDowntimeEntries implements production.LogRepository.
func (r *logRepositoryImpl) GetDowntimeEntries(ctx context.Context, productionLogID string) ([]production.DowntimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, production_log_id, downtime_id, duration_min, created_at
		FROM production_downtimes
		WHERE production_log_id = $1
	`
	rows, err := q.Query(ctx, query, productionLogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []production.DowntimeEntry
	for rows.Next() {
		var e production.DowntimeEntry
		if err := rows.Scan(&e.ID, &e.ProductionLogID, &e.DowntimeID, &e.DurationMin, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetRejectionEntries implements production.LogRepository.
func (r *logRepositoryImpl) GetRejectionEntries(ctx context.Context, productionLogID string) ([]production.RejectionEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, production_log_id, defect_id, quantity, created_at
		FROM production_rejections
		WHERE production_log_id = $1
	`
	rows, err := q.Query(ctx, query, productionLogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []production.RejectionEntry
	for rows.Next() {
		var e production.RejectionEntry
		if err := rows.Scan(&e.ID, &e.ProductionLogID, &e.DefectID, &e.Quantity, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
