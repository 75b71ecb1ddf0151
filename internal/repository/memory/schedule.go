package memory

import (
	"context"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/employee"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/google/uuid"
)

type scheduleRepositoryImpl struct {
	store *Store
}

func NewScheduleRepository(store *Store) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{store: store}
}

// Create implements schedule.ScheduleRepository. The append and the owner's
// updated_at refresh happen under the same lock, so a failed create leaves
// both untouched.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, entry schedule.Entry) (schedule.Entry, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	ownerIdx := -1
	for i, e := range s.employees {
		if e.ID == entry.EmployeeID {
			ownerIdx = i
			break
		}
	}
	if ownerIdx < 0 {
		return schedule.Entry{}, employee.ErrEmployeeNotFound
	}

	now := s.clk.Now()
	entry.ID = uuid.NewString()
	entry.CreatedAt = now

	s.schedules[entry.EmployeeID] = append(s.schedules[entry.EmployeeID], entry)
	s.employees[ownerIdx].UpdatedAt = now
	return entry, nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, employeeID string, scheduleID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	ownerIdx := -1
	for i, e := range s.employees {
		if e.ID == employeeID {
			ownerIdx = i
			break
		}
	}
	if ownerIdx < 0 {
		return employee.ErrEmployeeNotFound
	}

	entries := s.schedules[employeeID]
	for i, entry := range entries {
		if entry.ID == scheduleID {
			s.schedules[employeeID] = append(entries[:i:i], entries[i+1:]...)
			s.employees[ownerIdx].UpdatedAt = s.clk.Now()
			return nil
		}
	}
	return schedule.ErrScheduleNotFound
}

// GetByEmployeeID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]schedule.Entry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := false
	for _, e := range s.employees {
		if e.ID == employeeID {
			found = true
			break
		}
	}
	if !found {
		return nil, employee.ErrEmployeeNotFound
	}

	entries := s.schedules[employeeID]
	result := make([]schedule.Entry, len(entries))
	copy(result, entries)
	return result, nil
}

// GetStartingBetween implements schedule.ScheduleRepository. Selection is by
// interval start only, so a shift running past `to` still counts when it
// starts inside the window.
func (r *scheduleRepositoryImpl) GetStartingBetween(ctx context.Context, from, to time.Time) ([]schedule.DayEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []schedule.DayEntry
	for _, e := range s.employees {
		for _, entry := range s.schedules[e.ID] {
			start := entry.Interval.Start
			if start.Before(from) || !start.Before(to) {
				continue
			}
			result = append(result, schedule.DayEntry{
				Entry:        entry,
				EmployeeName: e.Name,
				Position:     string(e.Position),
			})
		}
	}
	return result, nil
}
