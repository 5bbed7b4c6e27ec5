package report

import "context"

// ReportService derives monthly productivity statistics from the persisted
// ledger. Reports are recomputed on every query, never stored.
type ReportService interface {
	// MonthlyReport returns one entry per known employee for the month named
	// by a YYYY-MM token. An empty or unparseable token yields an empty
	// list, not an error.
	MonthlyReport(ctx context.Context, monthToken string) ([]MonthlyEntry, error)
}
