package report

import "context"

// ReportRepository defines data access for weekly reports.
type ReportRepository interface {
	// Create inserts a report row and returns it with generated fields.
	Create(ctx context.Context, r WeeklyReport) (WeeklyReport, error)

	// Update rewrites an existing report row.
	Update(ctx context.Context, r WeeklyReport) error

	// GetByID retrieves a report by id, scoped to the owning email.
	GetByID(ctx context.Context, id string, email string) (WeeklyReport, error)

	// GetDraftByEmail returns the user's draft report, or nil when none
	// exists. Draft uniqueness is enforced only by this lookup pattern.
	GetDraftByEmail(ctx context.Context, email string) (*WeeklyReport, error)

	// CountCompleted counts the user's finalized reports; the next draft's
	// sequence number is this count plus one.
	CountCompleted(ctx context.Context, email string) (int, error)

	// ListByEmail returns all of the user's reports ordered by sequence
	// number descending.
	ListByEmail(ctx context.Context, email string) ([]WeeklyReport, error)

	// ListCompletedByEmail returns only finalized reports, oldest first, for
	// the hours rollup.
	ListCompletedByEmail(ctx context.Context, email string) ([]WeeklyReport, error)
}

// DailyHoursRepository defines data access for the per-report time records.
type DailyHoursRepository interface {
	Create(ctx context.Context, h DailyHours) (DailyHours, error)
	Update(ctx context.Context, h DailyHours) error

	// GetByReportID returns the hours row for a report, or nil when absent.
	GetByReportID(ctx context.Context, reportID string) (*DailyHours, error)
}
