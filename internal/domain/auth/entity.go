package auth

// Credential is one row of the login table. Passwords are stored either
// bcrypt-hashed or, for legacy seeded rows, in plaintext; the service
// distinguishes them by prefix.
type Credential struct {
	Email    string
	Password string
}
