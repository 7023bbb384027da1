package inspection

import (
	"errors"
	"fmt"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
)

var (
	ErrResultNotFound      = errors.New("inspection result not found")
	ErrInspectorNotFound   = errors.New("inspector not found for this tenant")
	ErrInspectionNotFound  = errors.New("inspection not found for this tenant")
	ErrShiftTimingNotFound = errors.New("shift timing not found for this tenant")
	ErrCapacityExceeded    = errors.New("maximum inspection count reached for this shift")
	ErrDuplicateResult     = errors.New("duplicate inspection result detected")
	ErrInvalidRequestData  = errors.New("invalid request data")
)

// OutsideWindowError reports an inspection hour falling outside the claimed
// shift window. The window bounds travel with the error for diagnostics.
type OutsideWindowError struct {
	Hour   int
	Window shift.TimeWindow
}

func (e *OutsideWindowError) Error() string {
	return fmt.Sprintf("inspection hour %02d:00 is outside shift time range %s", e.Hour, e.Window)
}
