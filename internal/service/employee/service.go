package employee

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/employee"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.ScheduleRepository
	clk          clock.Clock
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.ScheduleRepository,
	clk clock.Clock,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		clk:          clk,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:      strings.TrimSpace(req.Name),
		Position:  employee.Position(req.Position),
		Email:     req.Email,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.InfoContext(ctx, "employee created",
		slog.String("employee_id", created.ID),
		slog.String("position", string(created.Position)),
	)

	return employee.NewEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.enrich(ctx, e)
}

// SearchEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SearchEmployees(ctx context.Context, req employee.SearchEmployeeRequest) ([]employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	all, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))

	result := make([]employee.EmployeeResponse, 0, len(all))
	for _, e := range all {
		if req.Position != nil && e.Position != employee.Position(*req.Position) {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}

		resp, err := s.enrich(ctx, e)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}

	return result, nil
}

// ListPositions implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListPositions(ctx context.Context) []employee.PositionResponse {
	infos := employee.Positions()

	result := make([]employee.PositionResponse, 0, len(infos))
	for _, info := range infos {
		result = append(result, employee.PositionResponse{
			ID:   string(info.ID),
			Name: info.Name,
		})
	}

	return result
}

// matchesQuery checks the free-text filter against name, email and position
// display name.
func matchesQuery(e employee.Employee, query string) bool {
	return strings.Contains(strings.ToLower(e.Name), query) ||
		strings.Contains(strings.ToLower(e.Email), query) ||
		strings.Contains(strings.ToLower(e.Position.DisplayName()), query)
}

// enrich attaches schedule-derived fields to the directory response.
func (s *EmployeeServiceImpl) enrich(ctx context.Context, e employee.Employee) (employee.EmployeeResponse, error) {
	entries, err := s.scheduleRepo.GetByEmployeeID(ctx, e.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	resp := employee.NewEmployeeResponse(e)
	resp.ShiftCount = len(entries)

	now := s.clk.Now()
	var next *time.Time
	for _, entry := range entries {
		start := entry.Interval.Start
		if start.Before(now) {
			continue
		}
		if next == nil || start.Before(*next) {
			t := start
			next = &t
		}
	}
	if next != nil {
		formatted := next.Format(time.RFC3339)
		resp.NextShiftAt = &formatted
	}

	return resp, nil
}
