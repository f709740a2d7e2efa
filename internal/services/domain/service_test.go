package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		input    string
		wantRole Role
		wantOK   bool
	}{
		{"read", ReadRole, true},
		{"full", FullRole, true},
		{"READ", ReadRole, true},
		{"Full", FullRole, true},
		{"  full  ", FullRole, true},
		{"admin", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, ok := RoleFromString(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, ReadRole.IsValid())
	assert.True(t, FullRole.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestServiceScrubbed(t *testing.T) {
	svc := &Service{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         "billing",
		PasswordHash: "argon2id-hash",
		Role:         ReadRole,
		CreatedAt:    time.Now().UTC(),
	}

	scrubbed := svc.Scrubbed()
	require.NotNil(t, scrubbed)
	assert.Empty(t, scrubbed.PasswordHash)
	assert.Equal(t, svc.ID, scrubbed.ID)
	assert.Equal(t, svc.Name, scrubbed.Name)
	assert.Equal(t, svc.Role, scrubbed.Role)

	// The original record keeps its hash
	assert.Equal(t, "argon2id-hash", svc.PasswordHash)
}

func TestServiceScrubbed_Nil(t *testing.T) {
	var svc *Service
	assert.Nil(t, svc.Scrubbed())
}
