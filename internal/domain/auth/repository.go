package auth

import "context"

// CredentialRepository reads the login table.
type CredentialRepository interface {
	// GetByEmail returns the credential row for an email, or
	// ErrInvalidCredentials when no row exists.
	GetByEmail(ctx context.Context, email string) (Credential, error)

	// StampLogin records the first login time of a calendar day on the
	// credential row and returns the stamp in effect for loginDate. Later
	// logins on the same date get the stored stamp back unchanged.
	StampLogin(ctx context.Context, email, loginDate, loginTime string) (string, error)
}
