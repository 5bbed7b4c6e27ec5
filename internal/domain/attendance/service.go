package attendance

import "context"

// IngestService turns an uploaded workbook into a complete, gap-filled
// month ledger for every employee named in it.
type IngestService interface {
	IngestWorkbook(ctx context.Context, data []byte) (IngestResult, error)
}
