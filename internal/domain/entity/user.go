// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the credential record held by the user store.
type User struct {
	ID           int64     // Monotonically assigned identifier.
	Username     string    // Login identifier. Unique at the store level.
	PasswordHash string    // bcrypt hash of the password. The plaintext is never stored.
	CreatedAt    time.Time // Set once at creation, immutable afterwards.
}
