package postgresql

import (
	"context"
	"fmt"

	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/alamex/bitacora-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

const reportColumns = `
	id, email, sequence_number, period_label, status,
	activity_monday, activity_tuesday, activity_wednesday, activity_thursday, activity_friday,
	learnings, difficulties, next_plan,
	created_at, updated_at
`

func scanReport(row pgx.Row) (report.WeeklyReport, error) {
	var r report.WeeklyReport
	err := row.Scan(
		&r.ID, &r.Email, &r.SequenceNumber, &r.PeriodLabel, &r.Status,
		&r.Activities[report.Monday], &r.Activities[report.Tuesday], &r.Activities[report.Wednesday],
		&r.Activities[report.Thursday], &r.Activities[report.Friday],
		&r.Learnings, &r.Difficulties, &r.NextPlan,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// Create implements report.ReportRepository.
func (repo *reportRepository) Create(ctx context.Context, r report.WeeklyReport) (report.WeeklyReport, error) {
	query := `
		INSERT INTO reports (
			email, sequence_number, period_label, status,
			activity_monday, activity_tuesday, activity_wednesday, activity_thursday, activity_friday,
			learnings, difficulties, next_plan
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, created_at, updated_at
	`

	err := repo.db.QueryRow(ctx, query,
		r.Email, r.SequenceNumber, r.PeriodLabel, r.Status,
		r.Activities[report.Monday], r.Activities[report.Tuesday], r.Activities[report.Wednesday],
		r.Activities[report.Thursday], r.Activities[report.Friday],
		r.Learnings, r.Difficulties, r.NextPlan,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)

	if err != nil {
		return report.WeeklyReport{}, fmt.Errorf("failed to create report: %w", err)
	}

	return r, nil
}

// Update implements report.ReportRepository.
func (repo *reportRepository) Update(ctx context.Context, r report.WeeklyReport) error {
	query := `
		UPDATE reports SET
			sequence_number = $2,
			period_label = $3,
			status = $4,
			activity_monday = $5,
			activity_tuesday = $6,
			activity_wednesday = $7,
			activity_thursday = $8,
			activity_friday = $9,
			learnings = $10,
			difficulties = $11,
			next_plan = $12,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := repo.db.Exec(ctx, query,
		r.ID, r.SequenceNumber, r.PeriodLabel, r.Status,
		r.Activities[report.Monday], r.Activities[report.Tuesday], r.Activities[report.Wednesday],
		r.Activities[report.Thursday], r.Activities[report.Friday],
		r.Learnings, r.Difficulties, r.NextPlan,
	)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return report.ErrReportNotFound
	}

	return nil
}

// GetByID implements report.ReportRepository.
func (repo *reportRepository) GetByID(ctx context.Context, id string, email string) (report.WeeklyReport, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1 AND email = $2`

	r, err := scanReport(repo.db.QueryRow(ctx, query, id, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return report.WeeklyReport{}, report.ErrReportNotFound
		}
		return report.WeeklyReport{}, fmt.Errorf("failed to get report by id: %w", err)
	}

	return r, nil
}

// GetDraftByEmail implements report.ReportRepository.
func (repo *reportRepository) GetDraftByEmail(ctx context.Context, email string) (*report.WeeklyReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE email = $1 AND status = $2
		ORDER BY created_at
		LIMIT 1
	`

	r, err := scanReport(repo.db.QueryRow(ctx, query, email, report.StatusDraft))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no draft in progress
		}
		return nil, fmt.Errorf("failed to get draft report: %w", err)
	}

	return &r, nil
}

// CountCompleted implements report.ReportRepository.
func (repo *reportRepository) CountCompleted(ctx context.Context, email string) (int, error) {
	query := `SELECT COUNT(*) FROM reports WHERE email = $1 AND status = $2`

	var count int
	err := repo.db.QueryRow(ctx, query, email, report.StatusCompleted).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed reports: %w", err)
	}

	return count, nil
}

// ListByEmail implements report.ReportRepository.
func (repo *reportRepository) ListByEmail(ctx context.Context, email string) ([]report.WeeklyReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE email = $1
		ORDER BY sequence_number DESC
	`

	return repo.list(ctx, query, email)
}

// ListCompletedByEmail implements report.ReportRepository.
func (repo *reportRepository) ListCompletedByEmail(ctx context.Context, email string) ([]report.WeeklyReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE email = $1 AND status = $2
		ORDER BY sequence_number
	`

	return repo.list(ctx, query, email, report.StatusCompleted)
}

func (repo *reportRepository) list(ctx context.Context, query string, args ...interface{}) ([]report.WeeklyReport, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []report.WeeklyReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	return reports, nil
}
