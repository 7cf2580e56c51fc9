package auth

import "context"

// AuthService validates credentials and mints session tokens.
type AuthService interface {
	// Login checks the credential table, stamps the session login time and
	// reports whether the user still needs to configure a profile.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
