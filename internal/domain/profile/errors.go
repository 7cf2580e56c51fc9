package profile

import "errors"

// Profile domain errors
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already configured")
)
