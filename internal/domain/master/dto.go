package master

import "github.com/fabtrack/shopfloor-backend-go/internal/pkg/validator"

type BulkNamesRequest struct {
	Names []string `json:"names"`
}

func (r *BulkNamesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(NormalizeNames(r.Names)) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "names",
			Message: "at least one non-empty name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkNamesResponse struct {
	Inserted []string `json:"inserted"`
}

// LinkRequest associates catalog names (operations, defects or downtimes,
// depending on the endpoint) with departments. Missing catalog names are
// created on the fly; missing departments are an error.
type LinkRequest struct {
	Names           []string `json:"names"`
	DepartmentNames []string `json:"department_names"`
}

func (r *LinkRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(NormalizeNames(r.Names)) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "names",
			Message: "at least one non-empty name is required",
		})
	}
	if len(NormalizeNames(r.DepartmentNames)) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_names",
			Message: "at least one non-empty department name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LinkedPair struct {
	Name           string `json:"name"`
	DepartmentName string `json:"department_name"`
}

type LinkResponse struct {
	Inserted []LinkedPair `json:"inserted"`
}
