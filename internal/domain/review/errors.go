package review

import "errors"

var (
	ErrNotFound = errors.New("review not found")
	ErrInvalid  = errors.New("invalid review data")
)
