package shift

import (
	"errors"
	"fmt"
)

var (
	ErrShiftNotFound       = errors.New("shift not found")
	ErrShiftTimingNotFound = errors.New("shift timing not found")
	ErrShiftNameExists     = errors.New("shift with this name already exists")
	ErrNoTimings           = errors.New("shift timings must be provided")
	ErrInvalidRequestData  = errors.New("invalid request data")
)

// OverlapError reports two timings on the same weekday that share time.
type OverlapError struct {
	Weekday int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlap detected between timings on weekday %d", e.Weekday)
}

// BudgetError reports a weekday whose committed plus candidate hours would
// exceed a full day.
type BudgetError struct {
	Weekday int
	Hours   float64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("total shift duration %.2fh exceeds 24 hours on weekday %d", e.Hours, e.Weekday)
}

// DuplicateWeekdayError reports a shift defining two timings for one weekday.
type DuplicateWeekdayError struct {
	ShiftName string
	Weekday   int
}

func (e *DuplicateWeekdayError) Error() string {
	return fmt.Sprintf("duplicate weekday %d in shift %q", e.Weekday, e.ShiftName)
}
