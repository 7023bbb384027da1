package shift

import "time"

// TenantShift is a named recurring work period, unique per tenant. It owns
// one ShiftTiming per weekday it is active on.
type TenantShift struct {
	ID        string
	TenantID  string
	ShiftName string
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time

	Timings []ShiftTiming
}

// ShiftTiming is one weekday's concrete time window within a shift.
// Weekday runs 1=Monday through 7=Sunday, uniformly across the system.
type ShiftTiming struct {
	ID            string
	TenantShiftID string
	Weekday       int
	Window        TimeWindow
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
