package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/alamex/bitacora-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Editor(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Editor implements ReportHandler.
func (h *ReportHandlerImpl) Editor(w http.ResponseWriter, r *http.Request) {
	reportID := r.URL.Query().Get("report_id")

	state, err := h.reportService.Editor(r.Context(), reportID)
	if err != nil {
		slog.Error("Editor service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, state)
}

// Save implements ReportHandler.
func (h *ReportHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var saveReq report.SaveRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.reportService.Save(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Avance guardado", saved)
}

// Export implements ReportHandler. The rendered document streams back as an
// attachment; whether this export finalized the draft travels in a header so
// the client knows to return to the dashboard.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	var exportReq report.ExportRequest

	if err := json.NewDecoder(r.Body).Decode(&exportReq); err != nil {
		slog.Error("Export decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.Export(r.Context(), exportReq)
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.Header().Set("X-Report-Finalized", strconv.FormatBool(result.Finalized))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
}

// List implements ReportHandler.
func (h *ReportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.List(r.Context())
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}
