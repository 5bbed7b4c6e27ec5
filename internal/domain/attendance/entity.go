package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
)

// Record is one reconciled day for one employee, unique on the
// (employee, date) pair. ABSENT records always carry zero hours and no
// timestamps; PRESENT records carry the clamped in/out duration.
type Record struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Status      Status
	WorkedHours float64
	InTime      *time.Time
	OutTime     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
