package inspection

import (
	"context"
	"time"
)

type ResultRepository interface {
	Create(ctx context.Context, r Result) (Result, error)
	GetByID(ctx context.Context, id, tenantID string) (Result, error)
	GetByTenantID(ctx context.Context, tenantID string, limit, offset int) ([]Result, error)
	// CountForShiftInstance counts persisted results for one
	// (shift timing, calendar date) pair, the capacity denominator.
	CountForShiftInstance(ctx context.Context, shiftTimingID string, date time.Time) (int, error)
	// ExistsTriple reports whether a result with the same
	// (inspection, date, hour) already exists. excludeID skips one row so
	// updates do not collide with themselves; empty means no exclusion.
	ExistsTriple(ctx context.Context, inspectionID string, date time.Time, hour int, excludeID string) (bool, error)
	Update(ctx context.Context, r Result) error
	Delete(ctx context.Context, id, tenantID string) error
}
