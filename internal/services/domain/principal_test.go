package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipal(t *testing.T) {
	t.Run("read principal acts on itself only", func(t *testing.T) {
		p := NewPrincipal(&Service{Name: "svcA", Role: ReadRole})

		assert.Equal(t, "svcA", p.Name())
		assert.Equal(t, ReadRole, p.Role())
		assert.False(t, p.HasFullAccess())
		assert.True(t, p.CanActOn("svcA"))
		assert.True(t, p.CanActOn("SVCA"))
		assert.False(t, p.CanActOn("svcB"))
	})

	t.Run("full principal acts on anyone", func(t *testing.T) {
		p := NewPrincipal(&Service{Name: "svcA", Role: FullRole})

		assert.True(t, p.HasFullAccess())
		assert.True(t, p.CanActOn("svcA"))
		assert.True(t, p.CanActOn("svcB"))
	})

	t.Run("nil service yields empty principal", func(t *testing.T) {
		p := NewPrincipal(nil)

		assert.Empty(t, p.Name())
		assert.False(t, p.HasFullAccess())
		assert.False(t, p.CanActOn("svcA"))
	})
}
