package product

import (
	"strings"

	"github.com/fabtrack/shopfloor-backend-go/internal/pkg/validator"
)

type CreateProductRequest struct {
	ProductName string `json:"product_name"`
	ProductNo   string `json:"product_no"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductName) {
		errs = append(errs, validator.ValidationError{
			Field:   "product_name",
			Message: "product_name is required",
		})
	}
	if validator.IsEmpty(r.ProductNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "product_no",
			Message: "product_no is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDrawingRequest struct {
	ProductID string `json:"product_id"`
	DrawingNo string `json:"drawing_no"`
}

func (r *CreateDrawingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductID) {
		errs = append(errs, validator.ValidationError{
			Field:   "product_id",
			Message: "product_id is required",
		})
	}
	if validator.IsEmpty(r.DrawingNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "drawing_no",
			Message: "drawing_no is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateInspectionRequest struct {
	DrawingID     string   `json:"drawing_id"`
	DimensionName string   `json:"dimension_name"`
	Type          string   `json:"inspection_type"`
	LowerLimit    *float64 `json:"lower_limit,omitempty"`
	UpperLimit    *float64 `json:"upper_limit,omitempty"`
	Unit          *string  `json:"unit,omitempty"`
	GaugeName     *string  `json:"gauge_name,omitempty"`
}

func (r *CreateInspectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DrawingID) {
		errs = append(errs, validator.ValidationError{
			Field:   "drawing_id",
			Message: "drawing_id is required",
		})
	}
	if validator.IsEmpty(r.DimensionName) {
		errs = append(errs, validator.ValidationError{
			Field:   "dimension_name",
			Message: "dimension_name is required",
		})
	}
	if !validator.IsInSlice(r.Type, InspectionTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "inspection_type",
			Message: "inspection_type must be one of: " + strings.Join(InspectionTypeValues, ", "),
		})
	}
	if r.Type == string(InspectionTypeDimensional) && r.LowerLimit == nil && r.UpperLimit == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "lower_limit",
			Message: "dimensional inspections need at least one limit",
		})
	}
	if r.LowerLimit != nil && r.UpperLimit != nil && *r.LowerLimit > *r.UpperLimit {
		errs = append(errs, validator.ValidationError{
			Field:   "lower_limit",
			Message: "lower_limit must not exceed upper_limit",
		})
	}
	if r.Type == string(InspectionTypeGauge) && (r.GaugeName == nil || validator.IsEmpty(*r.GaugeName)) {
		errs = append(errs, validator.ValidationError{
			Field:   "gauge_name",
			Message: "gauge_name is required for gauge inspections",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProductResponse struct {
	ID          string            `json:"id"`
	TenantID    string            `json:"tenant_id"`
	ProductName string            `json:"product_name"`
	ProductNo   string            `json:"product_no"`
	Drawings    []DrawingResponse `json:"drawings,omitempty"`
	CreatedAt   string            `json:"created_at"`
}

type DrawingResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	DrawingNo string `json:"drawing_no"`
}

type InspectionResponse struct {
	ID            string   `json:"id"`
	DrawingID     string   `json:"drawing_id"`
	DimensionName string   `json:"dimension_name"`
	Type          string   `json:"inspection_type"`
	LowerLimit    *float64 `json:"lower_limit,omitempty"`
	UpperLimit    *float64 `json:"upper_limit,omitempty"`
	Unit          *string  `json:"unit,omitempty"`
	GaugeName     *string  `json:"gauge_name,omitempty"`
}
