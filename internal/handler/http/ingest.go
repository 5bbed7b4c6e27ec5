package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	ingestService attendance.IngestService
}

func NewAttendanceHandler(ingestService attendance.IngestService) AttendanceHandler {
	return &attendanceHandlerImpl{
		ingestService: ingestService,
	}
}

// Upload implements AttendanceHandler. The workbook arrives as the
// multipart field 'file'; only its first sheet is read.
func (h *attendanceHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.HandleError(w, attendance.ErrNoFile)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read uploaded file", "error", err)
		response.InternalServerError(w, "Failed to read uploaded file")
		return
	}

	result, err := h.ingestService.IngestWorkbook(r.Context(), data)
	if err != nil {
		slog.Error("Ingest failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Upload reconciled", result)
}
