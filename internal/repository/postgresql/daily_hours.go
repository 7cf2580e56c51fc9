package postgresql

import (
	"context"
	"fmt"

	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/alamex/bitacora-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dailyHoursRepository struct {
	db *database.DB
}

func NewDailyHoursRepository(db *database.DB) report.DailyHoursRepository {
	return &dailyHoursRepository{db: db}
}

// Empty time strings are persisted as NULL; the time columns reject "".
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Create implements report.DailyHoursRepository.
func (repo *dailyHoursRepository) Create(ctx context.Context, h report.DailyHours) (report.DailyHours, error) {
	query := `
		INSERT INTO daily_hours (
			report_id, email,
			entry_monday, exit_monday,
			entry_tuesday, exit_tuesday,
			entry_wednesday, exit_wednesday,
			entry_thursday, exit_thursday,
			entry_friday, exit_friday,
			total_week_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, created_at, updated_at
	`

	err := repo.db.QueryRow(ctx, query,
		h.ReportID, h.Email,
		nullIfEmpty(h.Entries[report.Monday]), nullIfEmpty(h.Exits[report.Monday]),
		nullIfEmpty(h.Entries[report.Tuesday]), nullIfEmpty(h.Exits[report.Tuesday]),
		nullIfEmpty(h.Entries[report.Wednesday]), nullIfEmpty(h.Exits[report.Wednesday]),
		nullIfEmpty(h.Entries[report.Thursday]), nullIfEmpty(h.Exits[report.Thursday]),
		nullIfEmpty(h.Entries[report.Friday]), nullIfEmpty(h.Exits[report.Friday]),
		h.TotalWeekHours,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)

	if err != nil {
		return report.DailyHours{}, fmt.Errorf("failed to create daily hours: %w", err)
	}

	return h, nil
}

// Update implements report.DailyHoursRepository.
func (repo *dailyHoursRepository) Update(ctx context.Context, h report.DailyHours) error {
	query := `
		UPDATE daily_hours SET
			entry_monday = $2, exit_monday = $3,
			entry_tuesday = $4, exit_tuesday = $5,
			entry_wednesday = $6, exit_wednesday = $7,
			entry_thursday = $8, exit_thursday = $9,
			entry_friday = $10, exit_friday = $11,
			total_week_hours = $12,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := repo.db.Exec(ctx, query,
		h.ID,
		nullIfEmpty(h.Entries[report.Monday]), nullIfEmpty(h.Exits[report.Monday]),
		nullIfEmpty(h.Entries[report.Tuesday]), nullIfEmpty(h.Exits[report.Tuesday]),
		nullIfEmpty(h.Entries[report.Wednesday]), nullIfEmpty(h.Exits[report.Wednesday]),
		nullIfEmpty(h.Entries[report.Thursday]), nullIfEmpty(h.Exits[report.Thursday]),
		nullIfEmpty(h.Entries[report.Friday]), nullIfEmpty(h.Exits[report.Friday]),
		h.TotalWeekHours,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("daily hours row %s not found", h.ID)
	}

	return nil
}

// GetByReportID implements report.DailyHoursRepository.
func (repo *dailyHoursRepository) GetByReportID(ctx context.Context, reportID string) (*report.DailyHours, error) {
	query := `
		SELECT id, report_id, email,
			entry_monday, exit_monday,
			entry_tuesday, exit_tuesday,
			entry_wednesday, exit_wednesday,
			entry_thursday, exit_thursday,
			entry_friday, exit_friday,
			total_week_hours, created_at, updated_at
		FROM daily_hours
		WHERE report_id = $1
		LIMIT 1
	`

	var h report.DailyHours
	entries := make([]*string, report.NumWeekdays)
	exits := make([]*string, report.NumWeekdays)

	err := repo.db.QueryRow(ctx, query, reportID).Scan(
		&h.ID, &h.ReportID, &h.Email,
		&entries[report.Monday], &exits[report.Monday],
		&entries[report.Tuesday], &exits[report.Tuesday],
		&entries[report.Wednesday], &exits[report.Wednesday],
		&entries[report.Thursday], &exits[report.Thursday],
		&entries[report.Friday], &exits[report.Friday],
		&h.TotalWeekHours, &h.CreatedAt, &h.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no hours recorded yet
		}
		return nil, fmt.Errorf("failed to get daily hours by report id: %w", err)
	}

	for d := 0; d < report.NumWeekdays; d++ {
		h.Entries[d] = orEmpty(entries[d])
		h.Exits[d] = orEmpty(exits[d])
	}

	return &h, nil
}
