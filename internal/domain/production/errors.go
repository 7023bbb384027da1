package production

import "errors"

var (
	ErrLogNotFound         = errors.New("production log not found")
	ErrOperatorNotFound    = errors.New("operator not found for this tenant")
	ErrShiftTimingNotFound = errors.New("shift timing not found for this tenant")
	ErrMoldMachineNotFound = errors.New("mold-machine mapping not found for this tenant")
	ErrFutureDate          = errors.New("production date cannot be in the future")
	ErrShiftNotEnded       = errors.New("shift has not ended yet for the given date")
	ErrDuplicateLog        = errors.New("production log already exists for this shift and mold-machine")
	ErrTenantMismatch      = errors.New("resource does not belong to this tenant")
	ErrInvalidRequestData  = errors.New("invalid request data")
)
