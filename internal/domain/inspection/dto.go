package inspection

import "github.com/fabtrack/shopfloor-backend-go/internal/pkg/validator"

type RecordResultRequest struct {
	InspectionID   string   `json:"inspection_id"`
	InspectorID    string   `json:"inspector_id"`
	ShiftTimingID  string   `json:"shift_timing_id"`
	MeasuredValue  *float64 `json:"measured_value,omitempty"`
	GoNoGo         *bool    `json:"go_no_go,omitempty"`
	InspectionDate string   `json:"inspection_date"`
	InspectionHour int      `json:"inspection_hour"`
}

func (r *RecordResultRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InspectionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "inspection_id",
			Message: "inspection_id is required",
		})
	}
	if validator.IsEmpty(r.InspectorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "inspector_id",
			Message: "inspector_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftTimingID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_timing_id",
			Message: "shift_timing_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.InspectionDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "inspection_date",
			Message: "inspection_date must be YYYY-MM-DD",
		})
	}
	if r.InspectionHour < 0 || r.InspectionHour > 23 {
		errs = append(errs, validator.ValidationError{
			Field:   "inspection_hour",
			Message: "inspection_hour must be between 0 and 23",
		})
	}
	if r.MeasuredValue == nil && r.GoNoGo == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "measured_value",
			Message: "either measured_value or go_no_go must be provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateResultRequest amends a persisted result. Window membership and the
// duplicate triple are re-validated, excluding the row being updated.
type UpdateResultRequest struct {
	ResultID       string   `json:"-"`
	MeasuredValue  *float64 `json:"measured_value,omitempty"`
	GoNoGo         *bool    `json:"go_no_go,omitempty"`
	InspectionHour *int     `json:"inspection_hour,omitempty"`
}

func (r *UpdateResultRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.InspectionHour != nil && (*r.InspectionHour < 0 || *r.InspectionHour > 23) {
		errs = append(errs, validator.ValidationError{
			Field:   "inspection_hour",
			Message: "inspection_hour must be between 0 and 23",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResultResponse struct {
	ID             string   `json:"id"`
	InspectionID   string   `json:"inspection_id"`
	InspectorID    string   `json:"inspector_id"`
	ShiftTimingID  string   `json:"shift_timing_id"`
	MeasuredValue  *float64 `json:"measured_value,omitempty"`
	GoNoGo         *bool    `json:"go_no_go,omitempty"`
	InspectionDate string   `json:"inspection_date"`
	InspectionHour int      `json:"inspection_hour"`
	CreatedAt      string   `json:"created_at"`
}
