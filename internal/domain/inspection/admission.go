package inspection

import "github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"

// MaxResultsPerShift caps recorded inspections per shift instance
// (shift timing + calendar date). It is a flat policy constant, not derived
// from shift duration.
const MaxResultsPerShift = 8

// Admission carries everything needed to decide whether a candidate result
// may be recorded. The caller supplies the already-fetched state; admission
// itself is pure.
type Admission struct {
	Window        shift.TimeWindow
	Hour          int  // candidate inspection hour, 0-23
	ExistingCount int  // persisted results for (shift_timing, date)
	HasDuplicate  bool // a result with the same (inspection, date, hour) exists
}

// Check runs the admission gates in order, short-circuiting on the first
// failure. Gates: window membership, capacity, duplicate. Resolution of the
// shift timing and inspector against the tenant happens before this.
func (a Admission) Check() error {
	if !a.Window.Contains(shift.ClockOf(a.Hour, 0)) {
		return &OutsideWindowError{Hour: a.Hour, Window: a.Window}
	}
	if a.ExistingCount >= MaxResultsPerShift {
		return ErrCapacityExceeded
	}
	if a.HasDuplicate {
		return ErrDuplicateResult
	}
	return nil
}
