package auditlog

import "context"

// Recorder is the best-effort write side used by the other services: a
// failed audit write never fails the action it records.
type Recorder interface {
	Record(ctx context.Context, userEmail, action, detail string)
}

// AuditLogService is the notifications viewer.
type AuditLogService interface {
	Recorder

	// ListMine returns the session user's latest entries.
	ListMine(ctx context.Context) ([]EntryResponse, error)
}
