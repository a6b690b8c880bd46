package domain

import "time"

// Admin is the single kind of privileged identity. Records are created at
// bootstrap and never updated through the API.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is what a verified session token asserts about its bearer.
type Identity struct {
	SubjectID string
	Username  string
}
