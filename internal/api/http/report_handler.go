package http

import (
	"net/http"

	"github.com/AbdelrahmanBayoumi/library-api/internal/report"
	"github.com/AbdelrahmanBayoumi/library-api/internal/service"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rep, err := h.reports.GetAnalytics(r.Context(), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *ReportHandler) ExportAnalytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format, err := report.ParseFormat(q.Get("format"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	export, err := h.reports.ExportAnalytics(r.Context(), q.Get("startDate"), q.Get("endDate"), format)
	if err != nil {
		writeError(w, err)
		return
	}
	writeFile(w, export.Data, export.ContentType, export.Filename)
}

func (h *ReportHandler) ExportOverdueLastMonth(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	export, err := h.reports.ExportOverdueLastMonth(r.Context(), format)
	if err != nil {
		writeError(w, err)
		return
	}
	writeFile(w, export.Data, export.ContentType, export.Filename)
}

func (h *ReportHandler) ExportLastMonthLoans(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	export, err := h.reports.ExportLastMonthLoans(r.Context(), format)
	if err != nil {
		writeError(w, err)
		return
	}
	writeFile(w, export.Data, export.ContentType, export.Filename)
}
