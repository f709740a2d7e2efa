// Package service provides the password hashing collaborator for service
// credentials. Hashing uses Argon2id via go-pwdhash; the rest of the module
// treats the hash as an opaque one-way value.
package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/pcoetsee/settings-service/internal/errors"
)

// PasswordService hashes and verifies service passwords.
type PasswordService interface {
	// HashPassword hashes a plaintext password.
	HashPassword(plainPassword string) (string, error)

	// ComparePassword performs a constant-time comparison between a plaintext
	// password and a stored hash. Any verification failure is a mismatch.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// HashPassword hashes a plaintext password using Argon2id.
func (p *passwordService) HashPassword(plainPassword string) (string, error) {
	hashed, err := p.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

// ComparePassword verifies a plaintext password against its hash.
func (p *passwordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	ok, err := p.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// NewPasswordService creates a PasswordService using Argon2id hashing.
// Uses the Moderate policy for a balance between security and performance.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with a valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}
