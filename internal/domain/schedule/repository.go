package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	// Create appends the entry to its employee's schedule list and
	// refreshes the employee's updated_at in the same atomic step. The
	// employee must exist.
	Create(ctx context.Context, entry Entry) (Entry, error)

	// Delete removes one entry from an employee's list, refreshing the
	// employee's updated_at. Returns ErrScheduleNotFound when the employee
	// has no such entry.
	Delete(ctx context.Context, employeeID string, scheduleID string) error

	// GetByEmployeeID returns an employee's entries in insertion order.
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Entry, error)

	// GetStartingBetween returns every entry across all employees whose
	// interval START falls within [from, to), ordered by employee insertion
	// order then per-employee insertion order.
	GetStartingBetween(ctx context.Context, from, to time.Time) ([]DayEntry, error)
}
