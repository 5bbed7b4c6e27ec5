package attendance

import "time"

// Policy holds the calendar-driven business rules: which weekday is the
// weekly off-day and how many hours each working day is expected to carry.
type Policy struct {
	WeeklyOffDay  time.Weekday
	WeekdayHours  float64
	SaturdayHours float64
	LeavesAllowed int
}

func DefaultPolicy() Policy {
	return Policy{
		WeeklyOffDay:  time.Sunday,
		WeekdayHours:  8.5,
		SaturdayHours: 4.0,
		LeavesAllowed: 2,
	}
}

// IsOffDay reports whether day falls on the weekly off-day. Off-days get no
// ledger record and no expected hours.
func (p Policy) IsOffDay(day time.Time) bool {
	return day.Weekday() == p.WeeklyOffDay
}

// ExpectedHours returns the expected working hours for a weekday. The
// off-day always wins, even when configured onto a Saturday.
func (p Policy) ExpectedHours(weekday time.Weekday) float64 {
	switch {
	case weekday == p.WeeklyOffDay:
		return 0
	case weekday == time.Saturday:
		return p.SaturdayHours
	default:
		return p.WeekdayHours
	}
}
