package directory

import "errors"

var (
	ErrNotFound       = errors.New("employee not found")
	ErrInvalid        = errors.New("invalid employee data")
	ErrBadCredentials = errors.New("invalid password")
)
