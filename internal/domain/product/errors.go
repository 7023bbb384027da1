package product

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductNoExists    = errors.New("product number already exists")
	ErrDrawingNotFound    = errors.New("drawing not found")
	ErrDrawingNoExists    = errors.New("drawing number already exists for this product")
	ErrInspectionNotFound = errors.New("inspection not found")
	ErrInvalidLimits      = errors.New("lower limit must not exceed upper limit")
	ErrInvalidRequestData = errors.New("invalid request data")
)
