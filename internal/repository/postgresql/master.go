package postgresql

import (
	"context"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/master"
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/database"
)

// Catalog repositories share one file; the four catalogs are structurally
// identical apart from their table and name column.

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) master.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// BulkCreate implements master.DepartmentRepository. Callers pass names
// already normalized and deduplicated.
func (r *departmentRepositoryImpl) BulkCreate(ctx context.Context, tenantID, createdBy string, names []string) ([]master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (tenant_id, department_name, created_by, updated_by)
		VALUES ($1, $2, $3, $3)
		RETURNING id, tenant_id, department_name, created_by, updated_by, created_at, updated_at
	`
	var created []master.Department
	for _, name := range names {
		var d master.Department
		err := q.QueryRow(ctx, query, tenantID, name, createdBy).Scan(
			&d.ID, &d.TenantID, &d.DepartmentName,
			&d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		created = append(created, d)
	}
	return created, nil
}

// GetByTenantID implements master.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, department_name, created_by, updated_by, created_at, updated_at
		FROM departments
		WHERE tenant_id = $1
		ORDER BY department_name
	`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []master.Department
	for rows.Next() {
		var d master.Department
		if err := rows.Scan(&d.ID, &d.TenantID, &d.DepartmentName,
			&d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

type operationRepositoryImpl struct {
	db *database.DB
}

func NewOperationRepository(db *database.DB) master.OperationRepository {
	return &operationRepositoryImpl{db: db}
}

// BulkCreate implements master.OperationRepository.
func (r *operationRepositoryImpl) BulkCreate(ctx context.Context, tenantID, createdBy string, names []string) ([]master.Operation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO operations (tenant_id, operation_name, created_by, updated_by)
		VALUES ($1, $2, $3, $3)
		RETURNING id, tenant_id, operation_name, created_by, updated_by, created_at, updated_at
	`
	var created []master.Operation
	for _, name := range names {
		var o master.Operation
		err := q.QueryRow(ctx, query, tenantID, name, createdBy).Scan(
			&o.ID, &o.TenantID, &o.OperationName,
			&o.CreatedBy, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		created = append(created, o)
	}
	return created, nil
}

// GetByTenantID implements master.OperationRepository.
func (r *operationRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]master.Operation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, operation_name, created_by, updated_by, created_at, updated_at
		FROM operations
		WHERE tenant_id = $1
		ORDER BY operation_name
	`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var operations []master.Operation
	for rows.Next() {
		var o master.Operation
		if err := rows.Scan(&o.ID, &o.TenantID, &o.OperationName,
			&o.CreatedBy, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		operations = append(operations, o)
	}
	return operations, rows.Err()
}

// LinkDepartments implements master.OperationRepository.
func (r *operationRepositoryImpl) LinkDepartments(ctx context.Context, tenantID, createdBy string, links []master.OperationDepartment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO operation_departments (tenant_id, operation_id, department_id, created_by)
		VALUES ($1, $2, $3, $4)
	`
	for _, l := range links {
		if _, err := q.Exec(ctx, query, tenantID, l.OperationID, l.DepartmentID, createdBy); err != nil {
			return err
		}
	}
	return nil
}

// GetDepartmentLinks implements master.OperationRepository.
func (r *operationRepositoryImpl) GetDepartmentLinks(ctx context.Context, tenantID string) ([]master.OperationDepartment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, operation_id, department_id
		FROM operation_departments
		WHERE tenant_id = $1
	`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []master.OperationDepartment
	for rows.Next() {
		var l master.OperationDepartment
		if err := rows.Scan(&l.ID, &l.TenantID, &l.OperationID, &l.DepartmentID); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

type defectRepositoryImpl struct {
	db *database.DB
}

func NewDefectRepository(db *database.DB) master.DefectRepository {
	return &defectRepositoryImpl{db: db}
}

// BulkCreate implements master.DefectRepository.
func (r *defectRepositoryImpl) BulkCreate(ctx context.Context, tenantID, createdBy string, names []string) ([]master.Defect, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO defects (tenant_id, defect_name, created_by, updated_by)
		VALUES ($1, $2, $3, $3)
		RETURNING id, tenant_id, defect_name, created_by, updated_by, created_at, updated_at
	`
	var created []master.Defect
	for _, name := range names {
		var d master.Defect
		err := q.QueryRow(ctx, query, tenantID, name, createdBy).Scan(
			&d.ID, &d.TenantID, &d.DefectName,
			&d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		created = append(created, d)
	}
	return created, nil
}

// GetByTenantID implements master.DefectRepository.
func (r *defectRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]master.Defect, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, defect_name, created_by, updated_by, created_at, updated_at
		FROM defects
		WHERE tenant_id = $1
		ORDER BY defect_name
	`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defects []master.Defect
	for rows.Next() {
		var d master.Defect
		if err := rows.Scan(&d.ID, &d.TenantID, &d.DefectName,
			&d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		defects = append(defects, d)
	}
	return defects, rows.Err()
}

// LinkDepartments implements master.DefectRepository.
func (r *defectRepositoryImpl) LinkDepartments(ctx context.Context, tenantID, createdBy string, links []master.DefectDepartment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO defect_departments (tenant_id, defect_id, department_id, created_by)
		VALUES ($1, $2, $3, $4)
	`
	for _, l := range links {
		if _, err := q.Exec(ctx, query, tenantID, l.DefectID, l.DepartmentID, createdBy); err != nil {
			return err
		}
	}
	return nil
}

// GetDepartmentLinks implements master.DefectRepository.
func (r *defectRepositoryImpl) GetDepartmentLinks(ctx context.Context, tenantID string) ([]master.DefectDepartment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, defect_id, department_id
		FROM defect_departments
		WHERE tenant_id = $1
	`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []master.DefectDepartment
	for rows.Next() {
		var l master.DefectDepartment
		if err := rows.Scan(&l.ID, &l.TenantID, &l.DefectID, &l.DepartmentID); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

type downtimeRepositoryImpl struct {
	db *database.DB
}

func NewDowntimeRepository(db *database.DB) master.DowntimeRepository {
	return &downtimeRepositoryImpl{db: db}
}

// BulkCreate implements master.DowntimeRepository.
func (r *downtimeRepositoryImpl) BulkCreate(ctx context.Context, tenantID, createdBy string, names []string) ([]master.Downtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO downtimes (tenant_id, downtime_name, created_by, updated_by)
		VALUES ($1, $2, $3, $3)
		RETURNING id, tenant_id, downtime_name, created_by, updated_by, created_at, updated_at
	`
	var created []master.Downtime
	for _, name := range names {
		var d master.Downtime
		err := q.QueryRow(ctx, query, tenantID, name, createdBy).Scan(
			&d.ID, &d.TenantID, &d.DowntimeName,
			&d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		created = append(created, d)
	}
	return created, nil
}

// GetByTenantID implements master.DowntimeRepository.
func (r *downtimeRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]master.Downtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, downtime_name, created_by, updated_by, created_at, updated_at
		FROM downtimes
		WHERE tenant_id = $1
		ORDER BY downtime_name
	`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var downtimes []master.Downtime
	for rows.Next() {
		var d master.Downtime
		if err := rows.Scan(&d.ID, &d.TenantID, &d.DowntimeName,
			&d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		downtimes = append(downtimes, d)
	}
	return downtimes, rows.Err()
}

// LinkDepartments implements master.DowntimeRepository.
func (r *downtimeRepositoryImpl) LinkDepartments(ctx context.Context, tenantID, createdBy string, links []master.DowntimeDepartment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO downtime_departments (tenant_id, downtime_id, department_id, created_by)
		VALUES ($1, $2, $3, $4)
	`
	for _, l := range links {
		if _, err := q.Exec(ctx, query, tenantID, l.DowntimeID, l.DepartmentID, createdBy); err != nil {
			return err
		}
	}
	return nil
}

// GetDepartmentLinks implements master.DowntimeRepository.
func (r *downtimeRepositoryImpl) GetDepartmentLinks(ctx context.Context, tenantID string) ([]master.DowntimeDepartment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, downtime_id, department_id
		FROM downtime_departments
		WHERE tenant_id = $1
	`
	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []master.DowntimeDepartment
	for rows.Next() {
		var l master.DowntimeDepartment
		if err := rows.Scan(&l.ID, &l.TenantID, &l.DowntimeID, &l.DepartmentID); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
