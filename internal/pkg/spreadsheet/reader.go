package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Row is one data row keyed by the sheet's header labels. Cells beyond the
// row's width map to the empty string.
type Row map[string]string

// ReadFirstSheet parses workbook bytes and returns the data rows of the
// first sheet keyed by its header row. An empty sheet (or a sheet with only
// a header) yields no rows and no error.
func ReadFirstSheet(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := rows[0]
	out := make([]Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(Row, len(headers))
		for col, header := range headers {
			if col < len(raw) {
				row[header] = raw[col]
			} else {
				row[header] = ""
			}
		}
		out = append(out, row)
	}

	return out, nil
}
