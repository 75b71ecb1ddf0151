package schedule

import "context"

// SchedulingService defines business logic for shift scheduling
type SchedulingService interface {
	// AddSchedule appends a validated shift to an employee's list. The
	// employee must exist and the interval must be well-formed; overlapping
	// shifts for the same employee are accepted and flagged in the response.
	AddSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)

	// RemoveSchedule deletes one shift from an employee's list
	RemoveSchedule(ctx context.Context, employeeID string, scheduleID string) error

	// ListEmployeeSchedules returns an employee's shifts in insertion order
	ListEmployeeSchedules(ctx context.Context, employeeID string) ([]ScheduleResponse, error)

	// SchedulesForDay returns every shift starting on the given calendar day
	SchedulesForDay(ctx context.Context, day string) ([]DayScheduleResponse, error)

	// WeekView buckets all shifts into a 7-day calendar window
	WeekView(ctx context.Context, req WeekViewRequest) (WeekViewResponse, error)
}
