package ingest

import (
	"math"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

type outcomeKind int

// A day resolves to exactly one of three outcomes. Both absence variants
// persist identically, but keeping them apart makes the reconciliation
// auditable: an explicit absence came from a row with blank times, an
// implicit one from a day the sheet never mentioned.
const (
	outcomePresent outcomeKind = iota
	outcomeExplicitAbsence
	outcomeImplicitAbsence
)

type dayOutcome struct {
	kind  outcomeKind
	hours float64
	in    *time.Time
	out   *time.Time
}

// resolveDay consults an employee's observations for one calendar day.
// When an upload carries duplicate rows for the same day, the last one
// scanned wins.
func resolveDay(day time.Time, observations []Observation) dayOutcome {
	var match *Observation
	for i := range observations {
		if sameDay(observations[i].Date, day) {
			match = &observations[i]
		}
	}

	switch {
	case match == nil:
		return dayOutcome{kind: outcomeImplicitAbsence}
	case match.In == nil || match.Out == nil:
		return dayOutcome{kind: outcomeExplicitAbsence}
	default:
		// Zero or negative spans are floored at zero hours but stay
		// PRESENT: both times were parseable.
		hours := match.Out.Sub(*match.In).Hours()
		if hours < 0 {
			hours = 0
		}
		hours = math.Round(hours*100) / 100
		return dayOutcome{kind: outcomePresent, hours: hours, in: match.In, out: match.Out}
	}
}

// record shapes the outcome into the persisted form. ABSENT always means
// zero hours and no timestamps.
func (o dayOutcome) record(employeeID string, day time.Time) attendance.Record {
	if o.kind == outcomePresent {
		return attendance.Record{
			EmployeeID:  employeeID,
			Date:        day,
			Status:      attendance.StatusPresent,
			WorkedHours: o.hours,
			InTime:      o.in,
			OutTime:     o.out,
		}
	}
	return attendance.Record{
		EmployeeID: employeeID,
		Date:       day,
		Status:     attendance.StatusAbsent,
	}
}

// monthBounds returns the first and last calendar day of anchor's month.
func monthBounds(anchor time.Time) (time.Time, time.Time) {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
