package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordService(t *testing.T) {
	svc := NewPasswordService()
	assert.NotNil(t, svc)
	assert.IsType(t, &passwordService{}, svc)
}

func TestPasswordService_HashPassword(t *testing.T) {
	svc := NewPasswordService()

	t.Run("Success_HashesPassword", func(t *testing.T) {
		hashed, err := svc.HashPassword("rightpw")
		require.NoError(t, err)

		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, "rightpw", hashed)

		// Verify hash uses Argon2id (PHC format)
		assert.Contains(t, hashed, "$argon2id$")
	})

	t.Run("Success_SamePasswordHashesDiffer", func(t *testing.T) {
		hash1, err := svc.HashPassword("rightpw")
		require.NoError(t, err)

		hash2, err := svc.HashPassword("rightpw")
		require.NoError(t, err)

		// Each hash carries its own salt
		assert.NotEqual(t, hash1, hash2)
	})
}

func TestPasswordService_ComparePassword(t *testing.T) {
	svc := NewPasswordService()

	hashed, err := svc.HashPassword("rightpw")
	require.NoError(t, err)

	t.Run("Success_MatchingPassword", func(t *testing.T) {
		assert.True(t, svc.ComparePassword("rightpw", hashed))
	})

	t.Run("Failure_WrongPassword", func(t *testing.T) {
		assert.False(t, svc.ComparePassword("wrongpw", hashed))
	})

	t.Run("Failure_MalformedHash", func(t *testing.T) {
		assert.False(t, svc.ComparePassword("rightpw", "not-a-hash"))
	})

	t.Run("Failure_EmptyHash", func(t *testing.T) {
		assert.False(t, svc.ComparePassword("rightpw", ""))
	})
}
