package employee

import "context"

// EmployeeRepository defines data access for employees. Employees are keyed
// by exact name; uploads create them on first appearance and never delete.
type EmployeeRepository interface {
	// GetByName retrieves an employee by exact, case-sensitive name.
	GetByName(ctx context.Context, name string) (Employee, error)

	// Upsert creates the employee if absent, otherwise returns the existing
	// row unchanged.
	Upsert(ctx context.Context, name string) (Employee, error)

	// List retrieves every known employee ordered by name.
	List(ctx context.Context) ([]Employee, error)
}
