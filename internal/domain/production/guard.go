package production

import (
	"time"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/shift"
)

// EfficiencyThreshold is the percentage below which downtime and rejection
// line items must accompany a production log.
const EfficiencyThreshold = 95.0

// Guard carries everything needed to decide whether a production log may be
// recorded. The caller supplies the already-fetched state and the current
// time; the guard itself is pure.
type Guard struct {
	Date         time.Time        // production date, midnight in the caller's location
	Window       shift.TimeWindow // the claimed shift timing's window
	Now          time.Time
	HasDuplicate bool // a log for (tenant, date, shift_timing, mold_machine) exists
}

// IsFutureDate reports whether the production date falls after now's
// calendar day. The caller checks this before resolving any state, so an
// invalid date never reports a lookup failure instead.
func IsFutureDate(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return day.After(today)
}

// Check runs the guard gates in order, short-circuiting on the first
// failure. Gates: future date, shift ended, duplicate. Resolution of the
// operator, shift timing and mold-machine mapping against the tenant
// happens before this.
func (g Guard) Check() error {
	if IsFutureDate(g.Date, g.Now) {
		return ErrFutureDate
	}
	date := time.Date(g.Date.Year(), g.Date.Month(), g.Date.Day(), 0, 0, 0, 0, g.Now.Location())
	if g.Now.Before(g.shiftEnd(date)) {
		return ErrShiftNotEnded
	}
	if g.HasDuplicate {
		return ErrDuplicateLog
	}
	return nil
}

// shiftEnd resolves the wall-clock end of the shift instance starting on
// date. An overnight window ends on the following calendar day.
func (g Guard) shiftEnd(date time.Time) time.Time {
	end := date.Add(time.Duration(g.Window.End) * time.Minute)
	if g.Window.IsOvernight() {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// Efficiency is actual output over target as a percentage. A zero target
// yields zero rather than dividing.
func Efficiency(actual, target int) float64 {
	if target == 0 {
		return 0
	}
	return float64(actual) / float64(target) * 100
}
