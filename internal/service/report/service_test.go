package report

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== In-memory fakes =====

type fakeEmployeeRepo struct {
	mu     sync.Mutex
	byName map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byName: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) GetByName(_ context.Context, name string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	emp, ok := f.byName[name]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Upsert(_ context.Context, name string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if emp, ok := f.byName[name]; ok {
		return emp, nil
	}
	emp := employee.Employee{ID: uuid.New().String(), Name: name}
	f.byName[name] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]employee.Employee, 0, len(f.byName))
	for _, emp := range f.byName {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, record attendance.Record) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record.ID = uuid.New().String()
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return rec, nil
		}
	}
	return attendance.Record{}, errors.New("attendance record not found")
}

func (f *fakeAttendanceRepo) ListByEmployeeInRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// ===== Helpers =====

func seedEmployee(t *testing.T, repo *fakeEmployeeRepo, name string) employee.Employee {
	t.Helper()
	emp, err := repo.Upsert(context.Background(), name)
	require.NoError(t, err)
	return emp
}

func presentRecord(employeeID string, date time.Time, hours float64) attendance.Record {
	in := date.Add(10 * time.Hour)
	out := in.Add(time.Duration(hours * float64(time.Hour)))
	return attendance.Record{
		EmployeeID:  employeeID,
		Date:        date,
		Status:      attendance.StatusPresent,
		WorkedHours: hours,
		InTime:      &in,
		OutTime:     &out,
	}
}

func absentRecord(employeeID string, date time.Time) attendance.Record {
	return attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusAbsent,
	}
}

func day(d int) time.Time {
	return time.Date(2023, time.October, d, 0, 0, 0, 0, time.UTC)
}

// ===== Tests =====

// Mon 2023-10-02 through Sat 2023-10-07: five weekdays at 8.5 plus one
// Saturday at 4.0 is 46.5 expected hours.
func TestReportService_ExpectedHoursForFullWeek(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewReportService(employeeRepo, attendanceRepo, attendance.DefaultPolicy())

	emp := seedEmployee(t, employeeRepo, "Alice")
	for d := 2; d <= 7; d++ {
		_, err := attendanceRepo.Upsert(ctx, presentRecord(emp.ID, day(d), 8))
		require.NoError(t, err)
	}

	entries, err := svc.MonthlyReport(ctx, "2023-10")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, 46.5, entries[0].ExpectedHours)
	assert.Equal(t, "48.00", entries[0].ActualHours)
	assert.Equal(t, 0, entries[0].LeavesTaken)
}

// Expected hours are calendar-driven: absent days still contribute their
// weekday's expected hours.
func TestReportService_LeavesAndProductivity(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewReportService(employeeRepo, attendanceRepo, attendance.DefaultPolicy())

	// Alice worked 8.5 hours on Oct 2 and missed every other non-Sunday
	// day of October 2023: 25 leaves, 22 weekdays and 4 Saturdays of
	// expected time (22*8.5 + 4*4 = 203).
	emp := seedEmployee(t, employeeRepo, "Alice")
	policy := attendance.DefaultPolicy()
	for d := 1; d <= 31; d++ {
		date := day(d)
		if policy.IsOffDay(date) {
			continue
		}
		var err error
		if d == 2 {
			_, err = attendanceRepo.Upsert(ctx, presentRecord(emp.ID, date, 8.5))
		} else {
			_, err = attendanceRepo.Upsert(ctx, absentRecord(emp.ID, date))
		}
		require.NoError(t, err)
	}

	entries, err := svc.MonthlyReport(ctx, "2023-10")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Alice", entry.Name)
	assert.Equal(t, 25, entry.LeavesTaken)
	assert.Equal(t, 2, entry.LeavesAllowed)
	assert.Equal(t, 203.0, entry.ExpectedHours)
	assert.Equal(t, "8.50", entry.ActualHours)
	// round(8.5/203*100, 1)
	assert.Equal(t, "4.2", entry.Productivity)
	assert.Len(t, entry.Records, 26)
}

// An employee with no records in range is a valid all-zero entry, and zero
// expected hours never divides.
func TestReportService_ZeroExpectedHoursGuard(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewReportService(employeeRepo, attendanceRepo, attendance.DefaultPolicy())

	seedEmployee(t, employeeRepo, "Ghost")

	entries, err := svc.MonthlyReport(ctx, "2023-10")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "0.00", entry.ActualHours)
	assert.Equal(t, 0.0, entry.ExpectedHours)
	assert.Equal(t, 0, entry.LeavesTaken)
	assert.Equal(t, "0.0", entry.Productivity)
	assert.Empty(t, entry.Records)
}

// Every known employee appears, not just the ones in the latest upload.
func TestReportService_IncludesAllKnownEmployees(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewReportService(employeeRepo, attendanceRepo, attendance.DefaultPolicy())

	alice := seedEmployee(t, employeeRepo, "Alice")
	seedEmployee(t, employeeRepo, "Bob")
	_, err := attendanceRepo.Upsert(ctx, presentRecord(alice.ID, day(2), 8.5))
	require.NoError(t, err)

	entries, err := svc.MonthlyReport(ctx, "2023-10")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, "Bob", entries[1].Name)
}

func TestReportService_EmptyOrBadMonthToken(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewReportService(employeeRepo, attendanceRepo, attendance.DefaultPolicy())

	seedEmployee(t, employeeRepo, "Alice")

	for _, token := range []string{"", "2023", "2023-13", "october", "2023-10-02"} {
		entries, err := svc.MonthlyReport(ctx, token)
		require.NoError(t, err, "token %q", token)
		assert.Empty(t, entries, "token %q", token)
	}
}

func TestReportService_RecordShape(t *testing.T) {
	ctx := context.Background()
	employeeRepo := newFakeEmployeeRepo()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewReportService(employeeRepo, attendanceRepo, attendance.DefaultPolicy())

	emp := seedEmployee(t, employeeRepo, "Alice")
	_, err := attendanceRepo.Upsert(ctx, presentRecord(emp.ID, day(2), 8.5))
	require.NoError(t, err)
	_, err = attendanceRepo.Upsert(ctx, absentRecord(emp.ID, day(3)))
	require.NoError(t, err)

	entries, err := svc.MonthlyReport(ctx, "2023-10")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Records, 2)

	present := entries[0].Records[0]
	assert.Equal(t, "2023-10-02", present.Date)
	assert.Equal(t, "PRESENT", present.Status)
	require.NotNil(t, present.InTime)
	assert.Equal(t, "2023-10-02T10:00:00Z", *present.InTime)

	absent := entries[0].Records[1]
	assert.Equal(t, "ABSENT", absent.Status)
	assert.Nil(t, absent.InTime)
	assert.Nil(t, absent.OutTime)
}
