package production

import (
	"context"
	"time"
)

type LogRepository interface {
	Create(ctx context.Context, log Log) (Log, error)
	GetByID(ctx context.Context, id, tenantID string) (Log, error)
	GetByTenantID(ctx context.Context, tenantID string, limit, offset int) ([]Log, error)
	// Exists reports whether a log for the unique key
	// (tenant, date, shift_timing, mold_machine) is already persisted.
	Exists(ctx context.Context, tenantID, shiftTimingID, moldMachineID string, date time.Time) (bool, error)
	CreateDowntimeEntries(ctx context.Context, entries []DowntimeEntry) error
	CreateRejectionEntries(ctx context.Context, entries []RejectionEntry) error
	GetDowntimeEntries(ctx context.Context, productionLogID string) ([]DowntimeEntry, error)
	GetRejectionEntries(ctx context.Context, productionLogID string) ([]RejectionEntry, error)
}
