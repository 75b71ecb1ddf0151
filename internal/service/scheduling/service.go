package scheduling

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/validator"
)

type SchedulingServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	clk          clock.Clock
	weekStartsOn time.Weekday
}

func NewSchedulingService(
	scheduleRepo schedule.ScheduleRepository,
	clk clock.Clock,
	weekStartsOn time.Weekday,
) schedule.SchedulingService {
	return &SchedulingServiceImpl{
		scheduleRepo: scheduleRepo,
		clk:          clk,
		weekStartsOn: weekStartsOn,
	}
}

// AddSchedule implements schedule.SchedulingService. Overlapping shifts for
// the same employee are accepted; the response carries an informational flag
// so the caller can warn about the double-booking.
func (s *SchedulingServiceImpl) AddSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	start, _ := validator.IsValidDateTime(req.StartTime)
	end, _ := validator.IsValidDateTime(req.EndTime)

	// Timestamps normalize to UTC so calendar bucketing is consistent no
	// matter which offset the client sent.
	interval, err := schedule.NewInterval(start.UTC(), end.UTC())
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	existing, err := s.scheduleRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	overlaps := false
	for _, other := range existing {
		if interval.Overlaps(other.Interval) {
			overlaps = true
			break
		}
	}

	created, err := s.scheduleRepo.Create(ctx, schedule.Entry{
		EmployeeID: req.EmployeeID,
		Interval:   interval,
		Notes:      req.Notes,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if overlaps {
		slog.WarnContext(ctx, "shift double-books employee",
			slog.String("employee_id", created.EmployeeID),
			slog.String("schedule_id", created.ID),
		)
	}

	return schedule.NewScheduleResponse(created, overlaps), nil
}

// RemoveSchedule implements schedule.SchedulingService.
func (s *SchedulingServiceImpl) RemoveSchedule(ctx context.Context, employeeID string, scheduleID string) error {
	return s.scheduleRepo.Delete(ctx, employeeID, scheduleID)
}

// ListEmployeeSchedules implements schedule.SchedulingService.
func (s *SchedulingServiceImpl) ListEmployeeSchedules(ctx context.Context, employeeID string) ([]schedule.ScheduleResponse, error) {
	entries, err := s.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]schedule.ScheduleResponse, 0, len(entries))
	for i, e := range entries {
		overlaps := false
		for j, other := range entries {
			if i != j && e.Interval.Overlaps(other.Interval) {
				overlaps = true
				break
			}
		}
		result = append(result, schedule.NewScheduleResponse(e, overlaps))
	}

	return result, nil
}

// SchedulesForDay implements schedule.SchedulingService. A shift belongs to
// the day it starts on; overnight shifts do not reappear on the following
// day.
func (s *SchedulingServiceImpl) SchedulesForDay(ctx context.Context, day string) ([]schedule.DayScheduleResponse, error) {
	parsed, ok := validator.IsValidDate(day)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "day",
			Message: "day must be a date in YYYY-MM-DD format",
		}}
	}

	from := schedule.StartOfDay(parsed.UTC())
	to := from.AddDate(0, 0, 1)

	entries, err := s.scheduleRepo.GetStartingBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]schedule.DayScheduleResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, schedule.NewDayScheduleResponse(e))
	}

	return result, nil
}

// WeekView implements schedule.SchedulingService.
func (s *SchedulingServiceImpl) WeekView(ctx context.Context, req schedule.WeekViewRequest) (schedule.WeekViewResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeekViewResponse{}, err
	}

	ref := s.clk.Now().UTC()
	if req.Reference != "" {
		parsed, _ := validator.IsValidDate(req.Reference)
		ref = parsed.UTC()
	}

	window := schedule.NewWeekWindow(ref, s.weekStartsOn).Shift(req.WeekOffset)

	entries, err := s.scheduleRepo.GetStartingBetween(ctx, window.Start(), window.End().AddDate(0, 0, 1))
	if err != nil {
		return schedule.WeekViewResponse{}, err
	}

	buckets := schedule.BucketByDay(window, entries)

	days := make([]schedule.WeekDayResponse, 0, 7)
	for _, day := range window.Days() {
		schedules := make([]schedule.DayScheduleResponse, 0, len(buckets[day]))
		for _, e := range buckets[day] {
			schedules = append(schedules, schedule.NewDayScheduleResponse(e))
		}
		days = append(days, schedule.WeekDayResponse{
			Date:      day.Format("2006-01-02"),
			Weekday:   day.Weekday().String(),
			Schedules: schedules,
		})
	}

	return schedule.WeekViewResponse{
		WeekStart: window.Start().Format("2006-01-02"),
		WeekEnd:   window.End().Format("2006-01-02"),
		Days:      days,
	}, nil
}
