package production

import "time"

// Log is one operator production declaration for a shift instance on a
// specific mold-machine pairing. Uniqueness is (tenant, date, shift_timing,
// mold_machine).
type Log struct {
	ID            string
	TenantID      string
	OperatorID    string
	ShiftTimingID string
	MoldMachineID string
	Date          time.Time
	Actual        int
	Target        int
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DowntimeEntry is a downtime line item attached to a production log,
// unique per (log, downtime).
type DowntimeEntry struct {
	ID              string
	ProductionLogID string
	DowntimeID      string
	DurationMin     int
	CreatedAt       time.Time
}

// RejectionEntry is a defect quantity line item attached to a production
// log, unique per (log, defect).
type RejectionEntry struct {
	ID              string
	ProductionLogID string
	DefectID        string
	Quantity        int
	CreatedAt       time.Time
}
