package employee

import "context"

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// CreateEmployee adds a new employee to the directory (manager+ only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// SearchEmployees filters by free-text query and optional position
	SearchEmployees(ctx context.Context, req SearchEmployeeRequest) ([]EmployeeResponse, error)

	// ListPositions returns the static recognized-position set
	ListPositions(ctx context.Context) []PositionResponse
}
