// Package memory implements the repository interfaces over an in-process,
// mutex-guarded dataset. It is the default backend for a single restaurant
// running without an external database and the backend every service test
// runs against.
package memory

import (
	"sync"

	"github.com/alexialg05/tasty-operations-manager/internal/domain/employee"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/product"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/sale"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/schedule"
	"github.com/alexialg05/tasty-operations-manager/internal/domain/user"
	"github.com/alexialg05/tasty-operations-manager/internal/pkg/clock"
)

// Store owns the whole in-memory dataset. Employees own their schedule
// entries; the schedules map is keyed by employee ID and preserves insertion
// order per employee, while the employees slice preserves directory insertion
// order. All mutations happen under one mutex so a schedule write and the
// owning employee's updated_at refresh are a single atomic step.
type Store struct {
	mu        sync.RWMutex
	clk       clock.Clock
	users     []user.User
	employees []employee.Employee
	schedules map[string][]schedule.Entry
	products  []product.Product
	sales     []sale.Sale
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		clk:       clk,
		schedules: make(map[string][]schedule.Entry),
	}
}
