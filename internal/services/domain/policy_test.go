package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/pcoetsee/settings-service/internal/errors"
)

func TestCanModifyRecord(t *testing.T) {
	tests := []struct {
		name       string
		actorName  string
		actorRole  Role
		targetName string
		wantErr    error
	}{
		{"self with read role", "svcA", ReadRole, "svcA", nil},
		{"self ignoring case", "svcA", ReadRole, "SVCA", nil},
		{"other with read role", "svcA", ReadRole, "svcB", ErrModificationDenied},
		{"other with full role", "svcA", FullRole, "svcB", nil},
		{"self with full role", "svcA", FullRole, "svcA", nil},
		{"blank target", "svcA", FullRole, "", ErrTargetRequired},
		{"whitespace target", "svcA", FullRole, "   ", ErrTargetRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanModifyRecord(tt.actorName, tt.actorRole, tt.targetName)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("denied error classifies as forbidden", func(t *testing.T) {
		err := CanModifyRecord("svcA", ReadRole, "svcB")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("blank target classifies as invalid input", func(t *testing.T) {
		err := CanModifyRecord("svcA", ReadRole, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestCanModifyPassword(t *testing.T) {
	// verify succeeds only for the exact pair used in the tests below
	verify := func(plain, hash string) bool {
		return plain == "correct" && hash == "hash-of-correct"
	}

	t.Run("read role with matching old password", func(t *testing.T) {
		ok, err := CanModifyPassword("svcA", ReadRole, "correct", "hash-of-correct", verify)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("read role with wrong old password", func(t *testing.T) {
		ok, err := CanModifyPassword("svcA", ReadRole, "wrong", "hash-of-correct", verify)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("full role bypasses old password check", func(t *testing.T) {
		ok, err := CanModifyPassword("svcA", FullRole, "anything", "hash-of-correct", verify)
		assert.NoError(t, err)
		assert.True(t, ok)

		ok, err = CanModifyPassword("svcA", FullRole, "", "", nil)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing stored hash is not permitted, not an error", func(t *testing.T) {
		ok, err := CanModifyPassword("svcA", ReadRole, "correct", "", verify)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("nil verify function is not permitted", func(t *testing.T) {
		ok, err := CanModifyPassword("svcA", ReadRole, "correct", "hash-of-correct", nil)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("blank target fails with invalid input", func(t *testing.T) {
		ok, err := CanModifyPassword("", ReadRole, "correct", "hash-of-correct", verify)
		assert.False(t, ok)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestPasswordChangeRequested(t *testing.T) {
	tests := []struct {
		name    string
		newHash string
		oldHash string
		want    bool
	}{
		{"different hashes", "new-hash", "old-hash", true},
		{"identical hashes", "same-hash", "same-hash", false},
		{"identical ignoring case", "Same-Hash", "same-hash", false},
		{"blank new hash", "", "old-hash", false},
		{"whitespace new hash", "   ", "old-hash", false},
		{"new hash against empty old", "new-hash", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordChangeRequested(tt.newHash, tt.oldHash))
		})
	}
}
