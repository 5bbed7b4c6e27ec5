package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/spreadsheet"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type IngestServiceImpl struct {
	db             database.TxBeginner
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	policy         attendance.Policy
}

func NewIngestService(
	db database.TxBeginner,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	policy attendance.Policy,
) attendance.IngestService {
	return &IngestServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		policy:         policy,
	}
}

// IngestWorkbook implements attendance.IngestService. One upload covers one
// calendar month, inferred from the first valid row's date; every employee
// named in the sheet ends up with exactly one record per non-off-day of
// that month.
func (s *IngestServiceImpl) IngestWorkbook(ctx context.Context, data []byte) (attendance.IngestResult, error) {
	if len(data) == 0 {
		return attendance.IngestResult{}, attendance.ErrNoFile
	}

	rows, err := spreadsheet.ReadFirstSheet(data)
	if err != nil {
		return attendance.IngestResult{}, fmt.Errorf("%w: %v", attendance.ErrInvalidWorkbook, err)
	}
	if len(rows) == 0 {
		return attendance.IngestResult{Message: "empty sheet"}, nil
	}

	observations := normalizeRows(rows)
	if len(observations) == 0 {
		return attendance.IngestResult{Message: "no valid rows found"}, nil
	}

	first, last := monthBounds(observations[0].Date)

	names, byName := groupByEmployee(observations)

	// One upload is one transaction: a failing write must not leave a
	// partially reconciled month behind.
	var result attendance.IngestResult
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, name := range names {
			emp, err := s.employeeRepo.Upsert(txCtx, name)
			if err != nil {
				return fmt.Errorf("upsert employee %q: %w", name, err)
			}

			written, err := s.reconcileMonth(txCtx, emp.ID, byName[name], first, last)
			if err != nil {
				return fmt.Errorf("reconcile month for %q: %w", name, err)
			}

			result.EmployeesProcessed++
			result.RecordsWritten += written
		}
		return nil
	})
	if err != nil {
		return attendance.IngestResult{}, err
	}

	return result, nil
}

// reconcileMonth walks every day in [first, last], skips the weekly
// off-day, and upserts exactly one outcome per remaining day.
func (s *IngestServiceImpl) reconcileMonth(ctx context.Context, employeeID string, observations []Observation, first, last time.Time) (int, error) {
	written := 0
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if s.policy.IsOffDay(day) {
			continue
		}

		outcome := resolveDay(day, observations)
		if _, err := s.attendanceRepo.Upsert(ctx, outcome.record(employeeID, day)); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// groupByEmployee splits observations per employee, preserving both the
// order employees first appear in and each employee's row scan order.
func groupByEmployee(observations []Observation) ([]string, map[string][]Observation) {
	names := make([]string, 0)
	byName := make(map[string][]Observation)
	for _, obs := range observations {
		if _, seen := byName[obs.Name]; !seen {
			names = append(names, obs.Name)
		}
		byName[obs.Name] = append(byName[obs.Name], obs)
	}
	return names, byName
}
