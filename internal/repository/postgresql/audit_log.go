package postgresql

import (
	"context"
	"fmt"

	"github.com/alamex/bitacora-backend-go/internal/domain/auditlog"
	"github.com/alamex/bitacora-backend-go/internal/pkg/database"
)

type auditLogRepository struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) auditlog.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Append implements auditlog.AuditLogRepository.
func (repo *auditLogRepository) Append(ctx context.Context, e auditlog.Entry) error {
	query := `
		INSERT INTO audit_logs (user_email, action, detail)
		VALUES ($1, $2, $3)
	`

	_, err := repo.db.Exec(ctx, query, e.UserEmail, e.Action, e.Detail)
	if err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}

	return nil
}

// ListRecent implements auditlog.AuditLogRepository.
func (repo *auditLogRepository) ListRecent(ctx context.Context, userEmail string, limit int) ([]auditlog.Entry, error) {
	query := `
		SELECT id, user_email, action, detail, created_at
		FROM audit_logs
		WHERE user_email = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := repo.db.Query(ctx, query, userEmail, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	entries := make([]auditlog.Entry, 0)
	for rows.Next() {
		var e auditlog.Entry
		if err := rows.Scan(&e.ID, &e.UserEmail, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit logs: %w", err)
	}

	return entries, nil
}
