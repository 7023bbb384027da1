package shift

import (
	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/validator"
)

// TimingInput is one weekday's window in a batch-create request. Weekday is
// optional; missing weekdays are auto-assigned cycling 1..7 in input order.
type TimingInput struct {
	Weekday    *int   `json:"weekday,omitempty"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
}

type ShiftInput struct {
	ShiftName string        `json:"shift_name"`
	Timings   []TimingInput `json:"timings"`
}

type CreateShiftsRequest struct {
	Shifts []ShiftInput `json:"shifts"`
}

func (r *CreateShiftsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Shifts) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "shifts",
			Message: "at least one shift is required",
		})
	}
	for _, s := range r.Shifts {
		if validator.IsEmpty(s.ShiftName) {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_name",
				Message: "shift_name is required",
			})
		}
		for _, t := range s.Timings {
			if !validator.IsValidClockTime(t.ShiftStart) {
				errs = append(errs, validator.ValidationError{
					Field:   "shift_start",
					Message: "shift_start must be HH:MM",
				})
			}
			if !validator.IsValidClockTime(t.ShiftEnd) {
				errs = append(errs, validator.ValidationError{
					Field:   "shift_end",
					Message: "shift_end must be HH:MM",
				})
			}
			if t.Weekday != nil && (*t.Weekday < 1 || *t.Weekday > 7) {
				errs = append(errs, validator.ValidationError{
					Field:   "weekday",
					Message: "weekday must be between 1 (Monday) and 7 (Sunday)",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateShiftsResponse reports the per-shift outcome of a batch. A shift that
// hits a name conflict is skipped; the rest of the batch continues.
type CreateShiftsResponse struct {
	Created []string `json:"created"`
	Skipped []string `json:"skipped"`
}

type TimingResponse struct {
	ID         string `json:"id"`
	Weekday    int    `json:"weekday"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
}

type ShiftResponse struct {
	ID        string           `json:"id"`
	TenantID  string           `json:"tenant_id"`
	ShiftName string           `json:"shift_name"`
	Timings   []TimingResponse `json:"timings"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}
