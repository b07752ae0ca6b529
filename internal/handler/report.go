package handler

import (
	"net/http"

	"github.com/volunteerhub/api/internal/service"
)

// ReportHandler handles matching report endpoints
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Volunteer handles GET /v1/reports/volunteers/{volunteerId}
func (h *ReportHandler) Volunteer(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.VolunteerReport(r.Context(), r.PathValue("volunteerId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, report)
}

// Event handles GET /v1/reports/events/{eventId}
func (h *ReportHandler) Event(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.EventReport(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, report)
}
