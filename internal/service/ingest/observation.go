package ingest

import (
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/spreadsheet"
)

// Header labels of the four logical columns in the upload sheet.
const (
	headerName    = "Employee Name"
	headerDate    = "Date"
	headerInTime  = "In-Time"
	headerOutTime = "Out-Time"
)

// Observation is one candidate attendance entry taken from a sheet row.
// In and Out are either both set or both nil: an entry with only one of the
// two is an absence signal, same as blank times.
type Observation struct {
	Name string
	Date time.Time
	In   *time.Time
	Out  *time.Time
}

// normalizeRow maps one raw row to an observation. Rows without a name or a
// resolvable date are discarded entirely; a named, dated row with blank or
// unpaired times is kept as an explicit absence entry.
func normalizeRow(row spreadsheet.Row) (Observation, bool) {
	name := strings.TrimSpace(row[headerName])
	date, ok := spreadsheet.ParseDate(row[headerDate])
	if name == "" || !ok {
		return Observation{}, false
	}

	obs := Observation{Name: name, Date: date}

	in, inOK := spreadsheet.ParseTimeOfDay(date, row[headerInTime])
	out, outOK := spreadsheet.ParseTimeOfDay(date, row[headerOutTime])
	if inOK && outOK {
		obs.In = &in
		obs.Out = &out
	}

	return obs, true
}

// normalizeRows keeps every usable observation in sheet order.
func normalizeRows(rows []spreadsheet.Row) []Observation {
	observations := make([]Observation, 0, len(rows))
	for _, row := range rows {
		if obs, ok := normalizeRow(row); ok {
			observations = append(observations, obs)
		}
	}
	return observations
}
