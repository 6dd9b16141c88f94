package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openummah/masjidmap/internal/sheet"
)

func TestManagerCreateGetRemove(t *testing.T) {
	m := NewManager(testMosques, sheet.DefaultOffsets)

	s := m.Create()
	assert.NotEmpty(t, s.Token())

	got, ok := m.Get(s.Token())
	assert.True(t, ok)
	assert.Same(t, s, got)

	m.Remove(s.Token())
	_, ok = m.Get(s.Token())
	assert.False(t, ok)

	// removing an unknown token is a no-op
	m.Remove("missing")
}

func TestManagerTokensAreUnique(t *testing.T) {
	m := NewManager(testMosques, sheet.DefaultOffsets)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s := m.Create()
		assert.False(t, seen[s.Token()])
		seen[s.Token()] = true
	}
}
