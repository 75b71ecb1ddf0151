package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered for another employee")
	ErrInvalidPosition  = errors.New("position is not in the recognized position set")
)
