package master

import "time"

// Catalog rows are plain tenant-scoped name lists. Names are stored
// trimmed and lowercased; bulk creation drops duplicates against both the
// input batch and the already-persisted set.

type Department struct {
	ID             string
	TenantID       string
	DepartmentName string
	CreatedBy      string
	UpdatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Operation struct {
	ID            string
	TenantID      string
	OperationName string
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Defect struct {
	ID         string
	TenantID   string
	DefectName string
	CreatedBy  string
	UpdatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Downtime struct {
	ID           string
	TenantID     string
	DowntimeName string
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Link rows associate a catalog entry with a department.

type OperationDepartment struct {
	ID           string
	TenantID     string
	OperationID  string
	DepartmentID string
}

type DefectDepartment struct {
	ID           string
	TenantID     string
	DefectID     string
	DepartmentID string
}

type DowntimeDepartment struct {
	ID           string
	TenantID     string
	DowntimeID   string
	DepartmentID string
}
