package master

import "context"

type DepartmentRepository interface {
	BulkCreate(ctx context.Context, tenantID, createdBy string, names []string) ([]Department, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Department, error)
}

type OperationRepository interface {
	BulkCreate(ctx context.Context, tenantID, createdBy string, names []string) ([]Operation, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Operation, error)
	LinkDepartments(ctx context.Context, tenantID, createdBy string, links []OperationDepartment) error
	GetDepartmentLinks(ctx context.Context, tenantID string) ([]OperationDepartment, error)
}

type DefectRepository interface {
	BulkCreate(ctx context.Context, tenantID, createdBy string, names []string) ([]Defect, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Defect, error)
	LinkDepartments(ctx context.Context, tenantID, createdBy string, links []DefectDepartment) error
	GetDepartmentLinks(ctx context.Context, tenantID string) ([]DefectDepartment, error)
}

type DowntimeRepository interface {
	BulkCreate(ctx context.Context, tenantID, createdBy string, names []string) ([]Downtime, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Downtime, error)
	LinkDepartments(ctx context.Context, tenantID, createdBy string, links []DowntimeDepartment) error
	GetDepartmentLinks(ctx context.Context, tenantID string) ([]DowntimeDepartment, error)
}
