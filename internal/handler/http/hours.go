package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alamex/bitacora-backend-go/internal/domain/hours"
	"github.com/alamex/bitacora-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type HoursHandler interface {
	GetMine(w http.ResponseWriter, r *http.Request)
	ExportMine(w http.ResponseWriter, r *http.Request)
}

type HoursHandlerImpl struct {
	hoursService hours.HoursService
}

func NewHoursHandler(hoursService hours.HoursService) HoursHandler {
	return &HoursHandlerImpl{hoursService: hoursService}
}

// GetMine implements HoursHandler.
func (h *HoursHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	summary, err := h.hoursService.GetMine(r.Context())
	if err != nil {
		slog.Error("Hours summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ExportMine implements HoursHandler.
func (h *HoursHandlerImpl) ExportMine(w http.ResponseWriter, r *http.Request) {
	content, filename, err := h.hoursService.ExportMine(r.Context())
	if err != nil {
		slog.Error("Hours export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
