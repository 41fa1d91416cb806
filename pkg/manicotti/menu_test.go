package manicotti

import (
	"testing"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuFocusWrapsAtEnds(t *testing.T) {
	menu := NewMenu("Main", []MenuItem{{Text: "a"}, {Text: "b"}, {Text: "c"}})

	assert.True(t, menu.HandleInput(constants.VirtualButtonUp))
	assert.Equal(t, 2, menu.FocusedIndex())

	assert.True(t, menu.HandleInput(constants.VirtualButtonDown))
	assert.Equal(t, 0, menu.FocusedIndex())
}

func TestMenuSelectInvokesCallback(t *testing.T) {
	menu := NewMenu("Main", []MenuItem{
		{Text: "games", Metadata: "roms"},
		{Text: "settings", Metadata: "cfg"},
	})

	var gotIndex int
	var gotItem MenuItem
	menu.OnSelect = func(index int, item MenuItem) {
		gotIndex = index
		gotItem = item
	}

	menu.HandleInput(constants.VirtualButtonDown)
	require.True(t, menu.HandleInput(constants.VirtualButtonA))

	assert.Equal(t, 1, gotIndex)
	assert.Equal(t, "settings", gotItem.Text)
	assert.Equal(t, "cfg", gotItem.Metadata)
}

func TestMenuLeavesBackUnconsumed(t *testing.T) {
	menu := NewMenu("Main", []MenuItem{{Text: "a"}})

	assert.False(t, menu.HandleInput(constants.VirtualButtonB))
	assert.False(t, menu.HandleInput(constants.VirtualButtonStart))
}

func TestMenuEmptyIgnoresInput(t *testing.T) {
	menu := NewMenu("Empty", nil)

	assert.False(t, menu.HandleInput(constants.VirtualButtonDown))
	assert.False(t, menu.HandleInput(constants.VirtualButtonA))
	assert.Equal(t, 0, menu.FocusedIndex())
}

func TestMenuSetFocusedIndexClamps(t *testing.T) {
	menu := NewMenu("Main", []MenuItem{{Text: "a"}, {Text: "b"}})

	menu.SetFocusedIndex(-5)
	assert.Equal(t, 0, menu.FocusedIndex())

	menu.SetFocusedIndex(10)
	assert.Equal(t, 1, menu.FocusedIndex())
}
