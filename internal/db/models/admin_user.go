package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// AdminUser represents an administrator account for the admin panel.
// Admins authenticate with email and password and receive a signed,
// time-limited session token.
type AdminUser struct {
	// ID is the unique identifier for the admin user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Email is the unique email address used for login.
	Email string `gorm:"unique;size:255;not null" json:"email"`
	// Name is the admin's display name.
	Name string `gorm:"size:100" json:"name"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255;not null" json:"-"`
	// CreatedAt is the timestamp when the account was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// This function should be used when creating or updating admin passwords.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the stored hash.
// It uses constant-time comparison to prevent timing attacks.
func (u *AdminUser) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
