package machinery

import "github.com/fabtrack/shopfloor-backend-go/internal/pkg/validator"

type CreateMachineRequest struct {
	MachineNo   string  `json:"machine_no"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateMachineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MachineNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "machine_no",
			Message: "machine_no is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateMoldRequest struct {
	MoldNo      string  `json:"mold_no"`
	Description *string `json:"description,omitempty"`
	Cavities    int     `json:"cavities"`
}

func (r *CreateMoldRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MoldNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "mold_no",
			Message: "mold_no is required",
		})
	}
	if r.Cavities < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "cavities",
			Message: "cavities must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateMoldMachineRequest struct {
	MoldID    string `json:"mold_id"`
	MachineID string `json:"machine_id"`
}

func (r *CreateMoldMachineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MoldID) {
		errs = append(errs, validator.ValidationError{
			Field:   "mold_id",
			Message: "mold_id is required",
		})
	}
	if validator.IsEmpty(r.MachineID) {
		errs = append(errs, validator.ValidationError{
			Field:   "machine_id",
			Message: "machine_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MachineResponse struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenant_id"`
	MachineNo   string  `json:"machine_no"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type MoldResponse struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenant_id"`
	MoldNo      string  `json:"mold_no"`
	Description *string `json:"description,omitempty"`
	Cavities    int     `json:"cavities"`
	CreatedAt   string  `json:"created_at"`
}

type MoldMachineResponse struct {
	ID        string `json:"id"`
	MoldID    string `json:"mold_id"`
	MachineID string `json:"machine_id"`
}
