package spreadsheet

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Cell values arrive from excelize as display strings, so a date cell can be
// ISO text, a locale layout, or a raw day-count serial depending on the cell
// style the uploader used.

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
}

// ParseDate normalizes a spreadsheet date cell to a calendar day (UTC,
// midnight). It accepts ISO-ish text, common display layouts, or a numeric
// day-count serial (1900 date system). Anything else reports not-ok.
func ParseDate(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	// Numeric date serial. Keep a realistic range so plain numbers like a
	// year or an employee code are not mistaken for serials.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial >= 20000 && serial <= 80000 {
			t, err := excelize.ExcelDateToTime(serial, false)
			if err != nil {
				return time.Time{}, false
			}
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// ParseTimeOfDay combines a time cell with its base date. Text cells are
// H:MM or HH:MM[:SS] with unparsable components defaulting to 0; numeric
// cells are a fraction of a day (0.5 = 12:00:00) added as seconds. A zero
// base date or empty cell reports not-ok.
func ParseTimeOfDay(base time.Time, cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if base.IsZero() || s == "" {
		return time.Time{}, false
	}

	if fraction, err := strconv.ParseFloat(s, 64); err == nil {
		seconds := int(math.Round(fraction * 86400))
		return base.Add(time.Duration(seconds) * time.Second), true
	}

	parts := strings.Split(s, ":")
	hours, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	minutes := 0
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	seconds := 0
	if len(parts) > 2 {
		seconds, _ = strconv.Atoi(strings.TrimSpace(parts[2]))
	}

	return time.Date(base.Year(), base.Month(), base.Day(), hours, minutes, seconds, 0, time.UTC), true
}
