package model

import "time"

// DefaultAdminUsername and DefaultAdminPassword are the credentials created
// by the one-shot admin seed.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// User represents an administrator account
type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"created_at"`
}

// Credentials is the body of login and register requests
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
