package attendance

// IngestResult summarizes one upload's reconciliation run.
type IngestResult struct {
	EmployeesProcessed int    `json:"employees_processed"`
	RecordsWritten     int    `json:"records_written"`
	Message            string `json:"message,omitempty"`
}
