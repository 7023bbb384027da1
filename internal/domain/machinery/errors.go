package machinery

import "errors"

var (
	ErrMachineNotFound     = errors.New("machine not found")
	ErrMachineNoExists     = errors.New("machine number already exists")
	ErrMoldNotFound        = errors.New("mold not found")
	ErrMoldNoExists        = errors.New("mold number already exists")
	ErrMoldMachineNotFound = errors.New("mold-machine mapping not found")
	ErrMoldMachineExists   = errors.New("mold-machine mapping already exists")
	ErrInvalidRequestData  = errors.New("invalid request data")
)
