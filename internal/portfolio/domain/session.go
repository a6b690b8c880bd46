package domain

import "time"

// Session is the result of a successful login.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}
