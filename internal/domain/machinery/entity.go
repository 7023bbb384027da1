package machinery

import "time"

type Machine struct {
	ID          string
	TenantID    string
	MachineNo   string
	Description *string
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Mold struct {
	ID          string
	TenantID    string
	MoldNo      string
	Description *string
	Cavities    int
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MoldMachine maps a mold onto a machine it can run on. Production logs
// reference this mapping, not the mold or machine directly. Both sides must
// belong to the same tenant.
type MoldMachine struct {
	ID        string
	MoldID    string
	MachineID string
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
