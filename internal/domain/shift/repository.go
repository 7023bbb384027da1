package shift

import "context"

type TenantShiftRepository interface {
	Create(ctx context.Context, s TenantShift) (TenantShift, error)
	GetByName(ctx context.Context, tenantID, shiftName string) (TenantShift, error)
	GetByTenantID(ctx context.Context, tenantID string) ([]TenantShift, error)
	Delete(ctx context.Context, id, tenantID string) error
}

type ShiftTimingRepository interface {
	Create(ctx context.Context, t ShiftTiming) (ShiftTiming, error)
	GetByID(ctx context.Context, id, tenantID string) (ShiftTiming, error)
	// GetByTenantID returns every committed timing across all of the
	// tenant's shifts, the "existing" set for budget checks.
	GetByTenantID(ctx context.Context, tenantID string) ([]ShiftTiming, error)
	GetByShiftID(ctx context.Context, tenantShiftID string) ([]ShiftTiming, error)
}
