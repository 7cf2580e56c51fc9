package report

import "context"

// ReportService is the weekly-report state machine: the editor check, draft
// saves and the finalize-and-export path.
type ReportService interface {
	// Editor resolves the editor state for the session user. Without a
	// profile it lands on first_report; with reportID set it loads that
	// report read-only; otherwise it loads the current draft (or a fresh
	// editor when none exists).
	Editor(ctx context.Context, reportID string) (EditorState, error)

	// Save persists draft progress: report upsert, then hours upsert with
	// the total recomputed server-side. Rejected for read-only reports.
	Save(ctx context.Context, req SaveRequest) (SaveResponse, error)

	// Export finalizes the draft (unless a completed report is addressed by
	// id) and renders the requested document. A failed finalize aborts
	// before any document is generated.
	Export(ctx context.Context, req ExportRequest) (ExportResult, error)

	// List returns the session user's reports split into drafts and
	// completed, most recent first.
	List(ctx context.Context) (ReportListResponse, error)
}
