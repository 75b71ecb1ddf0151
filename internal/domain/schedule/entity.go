package schedule

import "time"

// Entry is one shift on an employee's schedule list. Entries are owned
// exclusively by their employee and are never mutated in place; an update is
// a remove followed by a fresh insert.
type Entry struct {
	ID         string
	EmployeeID string
	Interval   Interval
	Notes      *string
	CreatedAt  time.Time
}

// DayEntry pairs an entry with the owning employee's identity for calendar
// rendering.
type DayEntry struct {
	Entry
	EmployeeName string
	Position     string
}
