package common

import "time"

// UserResult is the outward-facing identity record. It never carries the
// password.
type UserResult struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	Initials  string    `json:"initials"`
	CreatedAt time.Time `json:"created_at"`
}
