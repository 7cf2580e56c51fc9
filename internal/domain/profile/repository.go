package profile

import "context"

// ProfileRepository defines data access for profiles.
type ProfileRepository interface {
	// Create inserts a profile row. No uniqueness check is made here;
	// duplicate rows for the same email are left to the storage layer.
	Create(ctx context.Context, p Profile) (Profile, error)

	// GetByEmail returns the profile for an email, or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*Profile, error)
}
