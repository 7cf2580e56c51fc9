package profile

import "time"

// Profile is the one-time configuration a user records before the first
// report: personal data plus the fixed daily schedule the punctuality
// metrics compare against. There is no edit flow; profiles are read-only
// once created.
type Profile struct {
	ID             string
	Email          string
	FullName       string
	Department     string
	SupervisorName string
	EntryTime      string // fixed schedule, "HH:MM"
	ExitTime       string // fixed schedule, "HH:MM"
	CreatedAt      time.Time
}
