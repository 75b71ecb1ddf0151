package schedule

import "errors"

var (
	ErrInvalidInterval  = errors.New("interval start must be before end")
	ErrScheduleNotFound = errors.New("schedule not found")
)
