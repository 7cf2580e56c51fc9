package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
	ErrInvalidToken       = errors.New("invalid or missing session token")
)
