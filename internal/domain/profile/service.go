package profile

import "context"

// ProfileService covers the one-time profile setup flow.
type ProfileService interface {
	// Create validates and stores the profile for the session user and
	// records the action in the audit log.
	Create(ctx context.Context, req CreateProfileRequest) (ProfileResponse, error)

	// GetMine returns the session user's profile.
	GetMine(ctx context.Context) (ProfileResponse, error)
}
