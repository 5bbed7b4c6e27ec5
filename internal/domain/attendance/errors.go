package attendance

import "errors"

var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrInvalidWorkbook = errors.New("could not read workbook")
)
