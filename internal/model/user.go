package model

import "time"

// Staff roles recognized by the role middleware.  MANAGER can do
// everything HOST can; the distinction exists for future back-office
// endpoints and is carried in the JWT "role" claim.
const (
	RoleManager = "MANAGER"
	RoleHost    = "HOST"
)

// User represents a staff account as stored in the users table.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash (bcrypt)
	Role         string    // users.role (MANAGER or HOST)
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models a row in the refresh_tokens table.  Only the
// SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
