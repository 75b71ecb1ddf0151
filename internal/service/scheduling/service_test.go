package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/employee"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/validator"
	"github.com/alexialg05/tasty-operations-manager/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-03 is a Monday.
var testNow = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

type testEnv struct {
	svc          schedule.SchedulingService
	employeeRepo employee.EmployeeRepository
	clk          *clock.Fixed
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	clk := clock.NewFixed(testNow)
	store := memory.NewStore(clk)
	return testEnv{
		svc:          NewSchedulingService(memory.NewScheduleRepository(store), clk, time.Monday),
		employeeRepo: memory.NewEmployeeRepository(store),
		clk:          clk,
	}
}

func (e testEnv) createEmployee(t *testing.T, name string) employee.Employee {
	t.Helper()
	created, err := e.employeeRepo.Create(context.Background(), employee.Employee{
		Name:     name,
		Position: employee.PositionWaiter,
		Email:    name + "@example.com",
	})
	require.NoError(t, err)
	return created
}

func TestAddSchedule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t, "juan")

	resp, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
		EmployeeID: emp.ID,
		StartTime:  "2024-06-03T09:00:00Z",
		EndTime:    "2024-06-03T17:00:00Z",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, emp.ID, resp.EmployeeID)
	assert.False(t, resp.OverlapsExisting)
}

func TestAddScheduleNormalizesOffsets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t, "juan")

	resp, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
		EmployeeID: emp.ID,
		StartTime:  "2024-06-03T11:00:00+02:00",
		EndTime:    "2024-06-03T19:00:00+02:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03T09:00:00Z", resp.StartTime)
	assert.Equal(t, "2024-06-03T17:00:00Z", resp.EndTime)
}

func TestAddScheduleInvalidInterval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t, "juan")
	env.clk.Advance(time.Minute)

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"inverted", "2024-06-03T17:00:00Z", "2024-06-03T09:00:00Z"},
		{"zero length", "2024-06-03T09:00:00Z", "2024-06-03T09:00:00Z"},
	}
	for _, c := range cases {
		_, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
			EmployeeID: emp.ID,
			StartTime:  c.start,
			EndTime:    c.end,
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidInterval, c.name)
	}

	// A rejected shift leaves no trace: the list stays empty and the
	// employee's updated_at is untouched.
	schedules, err := env.svc.ListEmployeeSchedules(ctx, emp.ID)
	require.NoError(t, err)
	assert.Empty(t, schedules)

	unchanged, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.UpdatedAt, unchanged.UpdatedAt)
}

func TestAddScheduleValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.AddSchedule(context.Background(), schedule.CreateScheduleRequest{
		EmployeeID: "some-id",
		StartTime:  "not-a-timestamp",
		EndTime:    "",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "start_time")
	assert.Contains(t, details, "end_time")
}

func TestAddScheduleUnknownEmployee(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.AddSchedule(context.Background(), schedule.CreateScheduleRequest{
		EmployeeID: "ghost",
		StartTime:  "2024-06-03T09:00:00Z",
		EndTime:    "2024-06-03T17:00:00Z",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAddScheduleFlagsDoubleBooking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t, "juan")

	_, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
		EmployeeID: emp.ID,
		StartTime:  "2024-06-03T09:00:00Z",
		EndTime:    "2024-06-03T17:00:00Z",
	})
	require.NoError(t, err)

	// Overlapping shift is accepted, only flagged.
	overlapping, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
		EmployeeID: emp.ID,
		StartTime:  "2024-06-03T16:00:00Z",
		EndTime:    "2024-06-03T20:00:00Z",
	})
	require.NoError(t, err)
	assert.True(t, overlapping.OverlapsExisting)

	// Back-to-back is not a double-booking.
	adjacent, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
		EmployeeID: emp.ID,
		StartTime:  "2024-06-03T20:00:00Z",
		EndTime:    "2024-06-03T23:00:00Z",
	})
	require.NoError(t, err)
	assert.False(t, adjacent.OverlapsExisting)

	schedules, err := env.svc.ListEmployeeSchedules(ctx, emp.ID)
	require.NoError(t, err)
	assert.Len(t, schedules, 3)
}

func TestAddScheduleRefreshesUpdatedAt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t, "juan")

	env.clk.Advance(time.Minute)

	_, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
		EmployeeID: emp.ID,
		StartTime:  "2024-06-03T09:00:00Z",
		EndTime:    "2024-06-03T17:00:00Z",
	})
	require.NoError(t, err)

	refreshed, err := env.employeeRepo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.True(t, refreshed.UpdatedAt.After(emp.UpdatedAt))
}

func TestRemoveSchedule(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	emp := env.createEmployee(t, "juan")

	created, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
		EmployeeID: emp.ID,
		StartTime:  "2024-06-03T09:00:00Z",
		EndTime:    "2024-06-03T17:00:00Z",
	})
	require.NoError(t, err)

	err = env.svc.RemoveSchedule(ctx, emp.ID, "missing")
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	require.NoError(t, env.svc.RemoveSchedule(ctx, emp.ID, created.ID))

	schedules, err := env.svc.ListEmployeeSchedules(ctx, emp.ID)
	require.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestSchedulesForDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	juan := env.createEmployee(t, "juan")

	add := func(start, end string) {
		t.Helper()
		_, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
			EmployeeID: juan.ID,
			StartTime:  start,
			EndTime:    end,
		})
		require.NoError(t, err)
	}

	add("2024-06-03T09:00:00Z", "2024-06-03T17:00:00Z")
	// Overnight: starts Monday, ends Tuesday.
	add("2024-06-03T22:00:00Z", "2024-06-04T06:00:00Z")
	add("2024-06-04T09:00:00Z", "2024-06-04T17:00:00Z")

	monday, err := env.svc.SchedulesForDay(ctx, "2024-06-03")
	require.NoError(t, err)
	assert.Len(t, monday, 2)

	// The overnight shift belongs to Monday only.
	tuesday, err := env.svc.SchedulesForDay(ctx, "2024-06-04")
	require.NoError(t, err)
	require.Len(t, tuesday, 1)
	assert.Equal(t, "2024-06-04T09:00:00Z", tuesday[0].StartTime)

	_, err = env.svc.SchedulesForDay(ctx, "june 3rd")
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestWeekView(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	juan := env.createEmployee(t, "juan")
	maria := env.createEmployee(t, "maria")

	add := func(employeeID, start, end string) {
		t.Helper()
		_, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
			EmployeeID: employeeID,
			StartTime:  start,
			EndTime:    end,
		})
		require.NoError(t, err)
	}

	add(juan.ID, "2024-06-03T09:00:00Z", "2024-06-03T17:00:00Z")
	add(maria.ID, "2024-06-05T10:00:00Z", "2024-06-05T18:00:00Z")
	// Next week: outside the current window.
	add(juan.ID, "2024-06-10T09:00:00Z", "2024-06-10T17:00:00Z")

	view, err := env.svc.WeekView(ctx, schedule.WeekViewRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", view.WeekStart)
	assert.Equal(t, "2024-06-09", view.WeekEnd)
	require.Len(t, view.Days, 7)

	assert.Equal(t, "Monday", view.Days[0].Weekday)
	require.Len(t, view.Days[0].Schedules, 1)
	assert.Equal(t, "juan", view.Days[0].Schedules[0].EmployeeName)

	require.Len(t, view.Days[2].Schedules, 1)
	assert.Equal(t, "maria", view.Days[2].Schedules[0].EmployeeName)

	// Empty days are present with empty lists.
	assert.Empty(t, view.Days[1].Schedules)
	assert.Empty(t, view.Days[6].Schedules)
}

func TestWeekViewOffsetNavigation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	juan := env.createEmployee(t, "juan")

	_, err := env.svc.AddSchedule(ctx, schedule.CreateScheduleRequest{
		EmployeeID: juan.ID,
		StartTime:  "2024-06-10T09:00:00Z",
		EndTime:    "2024-06-10T17:00:00Z",
	})
	require.NoError(t, err)

	next, err := env.svc.WeekView(ctx, schedule.WeekViewRequest{WeekOffset: 1})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", next.WeekStart)
	assert.Len(t, next.Days[0].Schedules, 1)

	prev, err := env.svc.WeekView(ctx, schedule.WeekViewRequest{WeekOffset: -1})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-27", prev.WeekStart)

	// An explicit reference pins the window regardless of "today".
	pinned, err := env.svc.WeekView(ctx, schedule.WeekViewRequest{Reference: "2024-06-12"})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", pinned.WeekStart)
}
