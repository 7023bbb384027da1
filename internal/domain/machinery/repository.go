package machinery

import "context"

type MachineRepository interface {
	Create(ctx context.Context, m Machine) (Machine, error)
	GetByID(ctx context.Context, id, tenantID string) (Machine, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Machine, error)
	Delete(ctx context.Context, id, tenantID string) error
}

type MoldRepository interface {
	Create(ctx context.Context, m Mold) (Mold, error)
	GetByID(ctx context.Context, id, tenantID string) (Mold, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]Mold, error)
	Delete(ctx context.Context, id, tenantID string) error
}

type MoldMachineRepository interface {
	Create(ctx context.Context, mm MoldMachine) (MoldMachine, error)
	// GetByID resolves a mapping only when both its mold and machine
	// belong to the tenant.
	GetByID(ctx context.Context, id, tenantID string) (MoldMachine, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]MoldMachine, error)
	Delete(ctx context.Context, id, tenantID string) error
}
