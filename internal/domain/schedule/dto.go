package schedule

import (
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	EmployeeID string  `json:"employee_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an ISO8601 timestamp",
		})
	}

	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an ISO8601 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeekViewRequest selects a 7-day calendar window. Reference defaults to
// "today"; WeekOffset navigates whole weeks relative to it (negative for
// previous weeks, zero to reset to the current week).
type WeekViewRequest struct {
	Reference  string `json:"reference,omitempty"`
	WeekOffset int    `json:"week_offset,omitempty"`
}

func (r *WeekViewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Reference) {
		if _, ok := validator.IsValidDate(r.Reference); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "reference",
				Message: "reference must be a date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Notes      *string `json:"notes,omitempty"`
	// OverlapsExisting flags that the new shift double-books the employee.
	// Double-booking is allowed; this is informational only.
	OverlapsExisting bool `json:"overlaps_existing,omitempty"`
}

type DayScheduleResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Position     string `json:"position"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

type WeekDayResponse struct {
	Date      string                `json:"date"`
	Weekday   string                `json:"weekday"`
	Schedules []DayScheduleResponse `json:"schedules"`
}

type WeekViewResponse struct {
	WeekStart string            `json:"week_start"`
	WeekEnd   string            `json:"week_end"`
	Days      []WeekDayResponse `json:"days"`
}

// NewScheduleResponse maps an entry to its response representation.
func NewScheduleResponse(e Entry, overlaps bool) ScheduleResponse {
	return ScheduleResponse{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		StartTime:        e.Interval.Start.Format(time.RFC3339),
		EndTime:          e.Interval.End.Format(time.RFC3339),
		Notes:            e.Notes,
		OverlapsExisting: overlaps,
	}
}

// NewDayScheduleResponse maps a paired day entry for calendar rendering.
func NewDayScheduleResponse(e DayEntry) DayScheduleResponse {
	return DayScheduleResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		Position:     e.Position,
		StartTime:    e.Interval.Start.Format(time.RFC3339),
		EndTime:      e.Interval.End.Format(time.RFC3339),
	}
}
