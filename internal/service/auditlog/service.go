package auditlog

import (
	"context"
	"log/slog"

	"github.com/alamex/bitacora-backend-go/internal/domain/auditlog"
	"github.com/alamex/bitacora-backend-go/internal/pkg/session"
)

// notificationLimit caps the notifications view at the latest entries.
const notificationLimit = 50

type AuditLogServiceImpl struct {
	auditlog.AuditLogRepository
	session session.Service
	logger  *slog.Logger
}

func NewAuditLogService(auditLogRepository auditlog.AuditLogRepository, sessionService session.Service, logger *slog.Logger) auditlog.AuditLogService {
	return &AuditLogServiceImpl{
		AuditLogRepository: auditLogRepository,
		session:            sessionService,
		logger:             logger,
	}
}

// Record implements auditlog.Recorder. Append failures are logged and
// swallowed; the recorded action must not fail because its audit row did.
func (a *AuditLogServiceImpl) Record(ctx context.Context, userEmail, action, detail string) {
	err := a.AuditLogRepository.Append(ctx, auditlog.Entry{
		UserEmail: userEmail,
		Action:    action,
		Detail:    detail,
	})
	if err != nil {
		a.logger.WarnContext(ctx, "audit log append failed",
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

// ListMine implements auditlog.AuditLogService.
func (a *AuditLogServiceImpl) ListMine(ctx context.Context) ([]auditlog.EntryResponse, error) {
	sess, err := a.session.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := a.AuditLogRepository.ListRecent(ctx, sess.Email, notificationLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]auditlog.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, auditlog.ToResponse(e))
	}
	return responses, nil
}
