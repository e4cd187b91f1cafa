package model

import (
	"strings"
	"time"
)

// User is an account record. Email is the unique key, normalized lower-case.
// PasswordHash is a bcrypt hash; plaintext is never stored.
type User struct {
	ID           string    `json:"user_id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NormalizeEmail lower-cases and trims an email for use as the account key
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
