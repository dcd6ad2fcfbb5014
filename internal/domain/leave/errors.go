package leave

import "errors"

var (
	ErrNotFound         = errors.New("leave not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalid          = errors.New("invalid leave data")
)
