package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for reconciled attendance
// records.
type AttendanceRepository interface {
	// Upsert writes a record keyed by (employee, date): create if absent,
	// otherwise overwrite in place. Last write wins, no merge.
	Upsert(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// ListByEmployeeInRange retrieves an employee's records with
	// start <= date <= end, ordered by date.
	ListByEmployeeInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)
}
