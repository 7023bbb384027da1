package shift

import "context"

type ShiftService interface {
	// CreateShifts processes a batch of shift definitions for the
	// caller's tenant. Shifts whose name already exists are skipped and
	// reported; the remaining shifts are validated and committed in input
	// order, each checked against the tenant's running committed hours.
	CreateShifts(ctx context.Context, req CreateShiftsRequest) (CreateShiftsResponse, error)
	ListShifts(ctx context.Context) ([]ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error
}
