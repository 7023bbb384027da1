package master

import "errors"

var (
	ErrNothingNew         = errors.New("all provided names already exist, nothing new to add")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNoLinksRemaining   = errors.New("all provided mappings already exist")
	ErrInvalidRequestData = errors.New("invalid request data")
)
