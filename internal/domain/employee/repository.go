package employee

import (
	"context"
)

// EmployeeRepository is the read surface of the employee directory that the
// attendance subsystem consumes.
type EmployeeRepository interface {
	// GetByID returns the employee joined with department and designation
	// summaries. Returns ErrEmployeeNotFound when absent.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail looks up an employee for credential checks.
	// Returns ErrEmployeeNotFound when absent.
	GetByEmail(ctx context.Context, email string) (Employee, error)
}
