package response

import (
	"errors"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrNoFile):
		BadRequest(w, "No file uploaded", nil)
	case errors.Is(err, attendance.ErrInvalidWorkbook):
		BadRequest(w, "Could not read workbook", nil)

	// Individual bad rows never reach here: they are dropped during
	// normalization. Anything else is a generic ingest/query failure.
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
