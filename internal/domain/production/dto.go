package production

import "github.com/fabtrack/shopfloor-backend-go/internal/pkg/validator"

type DowntimeInput struct {
	DowntimeID  string `json:"downtime_id"`
	DurationMin int    `json:"duration_min"`
}

type RejectionInput struct {
	DefectID string `json:"defect_id"`
	Quantity int    `json:"quantity"`
}

type CreateLogRequest struct {
	ShiftTimingID    string           `json:"shift_timing_id"`
	MoldMachineID    string           `json:"mold_machine_id"`
	Date             string           `json:"date"`
	Actual           int              `json:"actual"`
	Target           int              `json:"target"`
	DowntimeEntries  []DowntimeInput  `json:"downtime_entries,omitempty"`
	RejectionEntries []RejectionInput `json:"rejection_entries,omitempty"`
}

func (r *CreateLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftTimingID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_timing_id",
			Message: "shift_timing_id is required",
		})
	}
	if validator.IsEmpty(r.MoldMachineID) {
		errs = append(errs, validator.ValidationError{
			Field:   "mold_machine_id",
			Message: "mold_machine_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	if r.Actual < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "actual",
			Message: "actual must not be negative",
		})
	}
	if r.Target < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "target",
			Message: "target must not be negative",
		})
	}
	for _, d := range r.DowntimeEntries {
		if validator.IsEmpty(d.DowntimeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "downtime_entries",
				Message: "downtime_id is required on every downtime entry",
			})
			break
		}
		if d.DurationMin <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "downtime_entries",
				Message: "duration_min must be positive",
			})
			break
		}
	}
	for _, e := range r.RejectionEntries {
		if validator.IsEmpty(e.DefectID) {
			errs = append(errs, validator.ValidationError{
				Field:   "rejection_entries",
				Message: "defect_id is required on every rejection entry",
			})
			break
		}
		if e.Quantity <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "rejection_entries",
				Message: "quantity must be positive",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DowntimeEntryResponse struct {
	DowntimeID  string `json:"downtime_id"`
	DurationMin int    `json:"duration_min"`
}

type RejectionEntryResponse struct {
	DefectID string `json:"defect_id"`
	Quantity int    `json:"quantity"`
}

type CreateLogResponse struct {
	ProductionLogID  string                   `json:"production_log_id"`
	Efficiency       float64                  `json:"efficiency"`
	DowntimeEntries  []DowntimeEntryResponse  `json:"downtime_entries"`
	RejectionEntries []RejectionEntryResponse `json:"rejection_entries"`
}

type LogResponse struct {
	ID            string  `json:"id"`
	OperatorID    string  `json:"operator_id"`
	ShiftTimingID string  `json:"shift_timing_id"`
	MoldMachineID string  `json:"mold_machine_id"`
	Date          string  `json:"date"`
	Actual        int     `json:"actual"`
	Target        int     `json:"target"`
	Efficiency    float64 `json:"efficiency"`
	CreatedAt     string  `json:"created_at"`
}
