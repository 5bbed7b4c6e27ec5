package http

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Monthly implements ReportHandler. A missing or malformed month token
// yields an empty list, not an error.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	entries, err := h.reportService.MonthlyReport(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
