package postgresql

import (
	"context"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/machinery"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type machineRepositoryImpl struct {
	db *database.DB
}

func NewMachineRepository(db *database.DB) machinery.MachineRepository {
	return &machineRepositoryImpl{db: db}
}

const machineColumns = `id, tenant_id, machine_no, description, created_by, updated_by, created_at, updated_at`

func scanMachine(row pgx.Row) (machinery.Machine, error) {
	var m machinery.Machine
	err := row.Scan(
		&m.ID,
		&m.TenantID,
		&m.MachineNo,
		&m.Description,
		&m.CreatedBy,
		&m.UpdatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// Create implements machinery.MachineRepository.
func (r *machineRepositoryImpl) Create(ctx context.Context, m machinery.Machine) (machinery.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO machines (tenant_id, machine_no, description, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + machineColumns

	return scanMachine(q.QueryRow(ctx, query, m.TenantID, m.MachineNo, m.Description, m.CreatedBy, m.UpdatedBy))
}

// GetByID implements machinery.MachineRepository.
func (r *machineRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (machinery.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + machineColumns + ` FROM machines WHERE id = $1 AND tenant_id = $2`
	return scanMachine(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements machinery.MachineRepository.
func (r *machineRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]machinery.Machine, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + machineColumns + ` FROM machines WHERE tenant_id = $1 ORDER BY machine_no`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var machines []machinery.Machine
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}
	return machines, rows.Err()
}

// Delete implements machinery.MachineRepository.
func (r *machineRepositoryImpl) Delete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM machines WHERE id = $1 AND tenant_id = $2`
	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type moldRepositoryImpl struct {
	db *database.DB
}

func NewMoldRepository(db *database.DB) machinery.MoldRepository {
	return &moldRepositoryImpl{db: db}
}

const moldColumns = `id, tenant_id, mold_no, description, cavities, created_by, updated_by, created_at, updated_at`

func scanMold(row pgx.Row) (machinery.Mold, error) {
	var m machinery.Mold
	err := row.Scan(
		&m.ID,
		&m.TenantID,
		&m.MoldNo,
		&m.Description,
		&m.Cavities,
		&m.CreatedBy,
		&m.UpdatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// Create implements machinery.MoldRepository.
func (r *moldRepositoryImpl) Create(ctx context.Context, m machinery.Mold) (machinery.Mold, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO molds (tenant_id, mold_no, description, cavities, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + moldColumns

	return scanMold(q.QueryRow(ctx, query, m.TenantID, m.MoldNo, m.Description, m.Cavities, m.CreatedBy, m.UpdatedBy))
}

// GetByID implements machinery.MoldRepository.
func (r *moldRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (machinery.Mold, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + moldColumns + ` FROM molds WHERE id = $1 AND tenant_id = $2`
	return scanMold(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements machinery.MoldRepository.
func (r *moldRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]machinery.Mold, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + moldColumns + ` FROM molds WHERE tenant_id = $1 ORDER BY mold_no`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var molds []machinery.Mold
	for rows.Next() {
		m, err := scanMold(rows)
		if err != nil {
			return nil, err
		}
		molds = append(molds, m)
	}
	return molds, rows.Err()
}

// Delete implements machinery.MoldRepository.
func (r *moldRepositoryImpl) Delete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM molds WHERE id = $1 AND tenant_id = $2`
	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type moldMachineRepositoryImpl struct {
	db *database.DB
}

func NewMoldMachineRepository(db *database.DB) machinery.MoldMachineRepository {
	return &moldMachineRepositoryImpl{db: db}
}

func scanMoldMachine(row pgx.Row) (machinery.MoldMachine, error) {
	var mm machinery.MoldMachine
	err := row.Scan(
		&mm.ID,
		&mm.MoldID,
		&mm.MachineID,
		&mm.CreatedBy,
		&mm.UpdatedBy,
		&mm.CreatedAt,
		&mm.UpdatedAt,
	)
	return mm, err
}

// Create implements machinery.MoldMachineRepository.
func (r *moldMachineRepositoryImpl) Create(ctx context.Context, mm machinery.MoldMachine) (machinery.MoldMachine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO mold_machines (mold_id, machine_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, mold_id, machine_id, created_by, updated_by, created_at, updated_at
	`
	return scanMoldMachine(q.QueryRow(ctx, query, mm.MoldID, mm.MachineID, mm.CreatedBy, mm.UpdatedBy))
}

// GetByID implements machinery.MoldMachineRepository. The mapping resolves
// only when both its mold and machine belong to the tenant.
func (r *moldMachineRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (machinery.MoldMachine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT mm.id, mm.mold_id, mm.machine_id, mm.created_by, mm.updated_by, mm.created_at, mm.updated_at
		FROM mold_machines mm
		JOIN molds mo ON mo.id = mm.mold_id
		JOIN machines ma ON ma.id = mm.machine_id
		WHERE mm.id = $1 AND mo.tenant_id = $2 AND ma.tenant_id = $2
	`
	return scanMoldMachine(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements machinery.MoldMachineRepository.
func (r *moldMachineRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]machinery.MoldMachine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT mm.id, mm.mold_id, mm.machine_id, mm.created_by, mm.updated_by, mm.created_at, mm.updated_at
		FROM mold_machines mm
		JOIN molds mo ON mo.id = mm.mold_id
		WHERE mo.tenant_id = $1
		ORDER BY mm.created_at
	`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mappings []machinery.MoldMachine
	for rows.Next() {
		mm, err := scanMoldMachine(rows)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, mm)
	}
	return mappings, rows.Err()
}

// Delete implements machinery.MoldMachineRepository.
func (r *moldMachineRepositoryImpl) Delete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM mold_machines mm
		USING molds mo
		WHERE mm.id = $1 AND mo.id = mm.mold_id AND mo.tenant_id = $2
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
