package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registryScreen struct {
	title string
}

func (s *registryScreen) ToPresent() Screen   { return s }
func (s *registryScreen) ScreenTitle() string { return s.title }

func TestRegistryKeysByIdentityNotContent(t *testing.T) {
	reg := newCompletionRegistry()

	first := &registryScreen{title: "same"}
	second := &registryScreen{title: "same"}

	reg.register(first, func() {})
	reg.register(second, func() {})
	assert.Equal(t, 2, reg.size(), "equal content, distinct identity, distinct entries")
}

func TestRegistryTakeRemovesEntry(t *testing.T) {
	reg := newCompletionRegistry()
	s := &registryScreen{title: "s"}

	fired := 0
	reg.register(s, func() { fired++ })

	fn, ok := reg.take(s)
	assert.True(t, ok)
	fn()
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, reg.size())

	_, ok = reg.take(s)
	assert.False(t, ok, "an entry is removed the moment it is taken")
}

func TestRegistryLastWriteWins(t *testing.T) {
	reg := newCompletionRegistry()
	s := &registryScreen{title: "s"}

	reg.register(s, func() { t.Fatal("replaced completion must never fire") })
	replaced := reg.register(s, func() {})
	assert.True(t, replaced)
	assert.Equal(t, 1, reg.size())

	fn, ok := reg.take(s)
	assert.True(t, ok)
	fn()
}

func TestRegistryDropDiscardsWithoutFiring(t *testing.T) {
	reg := newCompletionRegistry()
	s := &registryScreen{title: "s"}

	reg.register(s, func() { t.Fatal("dropped completion must never fire") })
	assert.True(t, reg.drop(s))
	assert.False(t, reg.drop(s))
	assert.Equal(t, 0, reg.size())
}
