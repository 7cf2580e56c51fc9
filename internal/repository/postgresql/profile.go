package postgresql

import (
	"context"
	"fmt"

	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepository{db: db}
}

// Create implements profile.ProfileRepository.
func (r *profileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	query := `
		INSERT INTO profiles (
			email, full_name, department, supervisor_name, entry_time, exit_time
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		p.Email,
		p.FullName,
		p.Department,
		p.SupervisorName,
		p.EntryTime,
		p.ExitTime,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return p, nil
}

// GetByEmail implements profile.ProfileRepository.
func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	query := `
		SELECT id, email, full_name, department, supervisor_name, entry_time, exit_time, created_at
		FROM profiles
		WHERE email = $1
		LIMIT 1
	`

	var p profile.Profile
	err := r.db.QueryRow(ctx, query, email).Scan(
		&p.ID, &p.Email, &p.FullName, &p.Department, &p.SupervisorName,
		&p.EntryTime, &p.ExitTime, &p.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no profile yet
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return &p, nil
}
