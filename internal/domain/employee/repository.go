package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetAll returns every employee in insertion order.
	GetAll(ctx context.Context) ([]Employee, error)
	// CountAll returns the directory size.
	CountAll(ctx context.Context) (int, error)
}
