package auditlog

import "context"

// AuditLogRepository is the append-only store behind the notifications view.
type AuditLogRepository interface {
	// Append inserts one entry.
	Append(ctx context.Context, e Entry) error

	// ListRecent returns the newest entries for a user, descending by
	// creation time, capped at limit.
	ListRecent(ctx context.Context, userEmail string, limit int) ([]Entry, error)
}
