package postgresql

import (
	"context"
	"fmt"

	"github.com/alamex/bitacora-backend-go/internal/domain/auth"
	"github.com/alamex/bitacora-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type credentialRepository struct {
	db *database.DB
}

func NewCredentialRepository(db *database.DB) auth.CredentialRepository {
	return &credentialRepository{db: db}
}

// GetByEmail implements auth.CredentialRepository.
func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (auth.Credential, error) {
	query := `
		SELECT email, password
		FROM credentials
		WHERE email = $1
	`

	var cred auth.Credential
	err := r.db.QueryRow(ctx, query, email).Scan(&cred.Email, &cred.Password)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Credential{}, auth.ErrInvalidCredentials
		}
		return auth.Credential{}, fmt.Errorf("failed to get credential: %w", err)
	}

	return cred, nil
}

// StampLogin implements auth.CredentialRepository.
func (r *credentialRepository) StampLogin(ctx context.Context, email, loginDate, loginTime string) (string, error) {
	query := `
		UPDATE credentials
		SET login_date = $2, login_time = $3
		WHERE email = $1 AND (login_date IS NULL OR login_date <> $2)
	`

	_, err := r.db.Exec(ctx, query, email, loginDate, loginTime)
	if err != nil {
		return "", fmt.Errorf("failed to stamp login: %w", err)
	}

	var stored *string
	err = r.db.QueryRow(ctx, `SELECT login_time FROM credentials WHERE email = $1`, email).Scan(&stored)
	if err != nil {
		return "", fmt.Errorf("failed to read login stamp: %w", err)
	}
	if stored == nil {
		return loginTime, nil
	}

	return *stored, nil
}
