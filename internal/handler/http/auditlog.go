package http

import (
	"log/slog"
	"net/http"

	"github.com/alamex/bitacora-backend-go/internal/domain/auditlog"
	"github.com/alamex/bitacora-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	ListMine(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	auditLogService auditlog.AuditLogService
}

func NewNotificationHandler(auditLogService auditlog.AuditLogService) NotificationHandler {
	return &NotificationHandlerImpl{auditLogService: auditLogService}
}

// ListMine implements NotificationHandler.
func (h *NotificationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	entries, err := h.auditLogService.ListMine(r.Context())
	if err != nil {
		slog.Error("Notifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
