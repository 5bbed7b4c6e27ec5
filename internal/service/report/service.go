package report

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	policy         attendance.Policy
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	policy attendance.Policy,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		policy:         policy,
	}
}

// MonthlyReport implements report.ReportService. Every known employee gets
// an entry, not just the ones in the latest upload; an employee with no
// records in range yields a valid all-zero entry.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, monthToken string) ([]report.MonthlyEntry, error) {
	start, ok := validator.ParseMonthToken(monthToken)
	if !ok {
		return []report.MonthlyEntry{}, nil
	}
	end := start.AddDate(0, 1, -1)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	entries := make([]report.MonthlyEntry, 0, len(employees))
	for _, emp := range employees {
		records, err := s.attendanceRepo.ListByEmployeeInRange(ctx, emp.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to list records for %q: %w", emp.Name, err)
		}
		entries = append(entries, s.buildEntry(emp, records))
	}

	return entries, nil
}

// buildEntry rolls an employee's records in range into monthly totals.
// Expected hours are calendar-driven: every record's weekday contributes,
// present or absent.
func (s *ReportServiceImpl) buildEntry(emp employee.Employee, records []attendance.Record) report.MonthlyEntry {
	var actual, expected float64
	leaves := 0

	responses := make([]report.RecordResponse, 0, len(records))
	for _, rec := range records {
		actual += rec.WorkedHours
		expected += s.policy.ExpectedHours(rec.Date.Weekday())
		if rec.Status == attendance.StatusAbsent {
			leaves++
		}
		responses = append(responses, toRecordResponse(rec))
	}

	// Guard against division by zero: no expected hours means 0.0
	// productivity, never NaN.
	productivity := 0.0
	if expected > 0 {
		productivity = math.Round(actual/expected*100*10) / 10
	}

	return report.MonthlyEntry{
		ID:            emp.ID,
		Name:          emp.Name,
		ActualHours:   strconv.FormatFloat(actual, 'f', 2, 64),
		ExpectedHours: expected,
		LeavesTaken:   leaves,
		LeavesAllowed: s.policy.LeavesAllowed,
		Productivity:  strconv.FormatFloat(productivity, 'f', 1, 64),
		Records:       responses,
	}
}

func toRecordResponse(rec attendance.Record) report.RecordResponse {
	resp := report.RecordResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Date:        rec.Date.Format("2006-01-02"),
		Status:      string(rec.Status),
		WorkedHours: rec.WorkedHours,
	}
	if rec.InTime != nil {
		in := rec.InTime.Format(time.RFC3339)
		resp.InTime = &in
	}
	if rec.OutTime != nil {
		out := rec.OutTime.Format(time.RFC3339)
		resp.OutTime = &out
	}
	return resp
}
