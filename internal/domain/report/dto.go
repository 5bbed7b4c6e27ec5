package report

// RecordResponse is one ledger day as exposed to the dashboard.
type RecordResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employeeId"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	WorkedHours float64 `json:"workedHours"`
	InTime      *string `json:"inTime"`
	OutTime     *string `json:"outTime"`
}

// MonthlyEntry is one employee's row in the monthly productivity report.
// ActualHours and Productivity are preformatted strings (2 and 1 decimals)
// because the dashboard renders them verbatim.
type MonthlyEntry struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	ActualHours   string           `json:"actualHours"`
	ExpectedHours float64          `json:"expectedHours"`
	LeavesTaken   int              `json:"leavesTaken"`
	LeavesAllowed int              `json:"leavesAllowed"`
	Productivity  string           `json:"productivity"`
	Records       []RecordResponse `json:"records"`
}
