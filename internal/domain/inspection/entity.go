package inspection

import "time"

// Result is one recorded measurement for an inspection characteristic,
// tagged with the shift timing and the hour it was taken. The tuple
// (shift_timing, inspection_date) is the shift instance capacity is
// enforced against.
type Result struct {
	ID             string
	InspectionID   string
	InspectorID    string
	ShiftTimingID  string
	MeasuredValue  *float64
	GoNoGo         *bool
	InspectionDate time.Time
	InspectionHour int // 0-23
	CreatedBy      string
	UpdatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
