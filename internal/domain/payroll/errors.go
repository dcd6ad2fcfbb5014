package payroll

import "errors"

var (
	ErrNotFound         = errors.New("payroll record not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalid          = errors.New("invalid payroll data")
)
