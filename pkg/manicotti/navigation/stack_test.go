package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/navigation"
)

type recordingListener struct {
	events []navigation.TransitionEvent
}

func (l *recordingListener) TransitionFinished(ev navigation.TransitionEvent) {
	l.events = append(l.events, ev)
}

func TestStackSurfaceMutations(t *testing.T) {
	surface := navigation.NewStackSurface()
	root := &stubScreen{title: "root"}
	a := &stubScreen{title: "a"}
	b := &stubScreen{title: "b"}

	surface.SetRoot(root, false)
	surface.Push(a, false)
	surface.Push(b, false)
	assert.Equal(t, []navigation.Screen{root, a, b}, surface.Screens())
	assert.Equal(t, 3, surface.Depth())
	assert.Equal(t, navigation.Screen(b), surface.Top())
	assert.True(t, surface.Contains(a))

	popped := surface.Pop(false)
	assert.Equal(t, navigation.Screen(b), popped)
	assert.False(t, surface.Contains(b))

	removed := surface.PopToRoot(false)
	assert.Equal(t, []navigation.Screen{a}, removed)
	assert.Equal(t, []navigation.Screen{root}, surface.Screens())
}

func TestStackSurfacePopToRootOrder(t *testing.T) {
	surface := navigation.NewStackSurface()
	root := &stubScreen{title: "root"}
	a := &stubScreen{title: "a"}
	b := &stubScreen{title: "b"}
	c := &stubScreen{title: "c"}

	surface.SetRoot(root, false)
	for _, s := range []*stubScreen{a, b, c} {
		surface.Push(s, false)
	}

	removed := surface.PopToRoot(false)
	assert.Equal(t, []navigation.Screen{c, b, a}, removed, "removed screens are reported topmost first")
}

func TestStackSurfaceEmitsEventPerStackMutation(t *testing.T) {
	surface := navigation.NewStackSurface()
	listener := &recordingListener{}
	surface.SetTransitionListener(listener)

	root := &stubScreen{title: "root"}
	a := &stubScreen{title: "a"}

	surface.SetRoot(root, false)
	surface.Push(a, false)
	surface.Pop(false)

	require.Len(t, listener.events, 3)
	assert.Nil(t, listener.events[0].From, "initial root set has no from-screen")
	assert.Equal(t, navigation.Screen(root), listener.events[1].From)
	assert.Equal(t, navigation.Screen(a), listener.events[2].From)

	// Overlay operations are not stack transitions.
	surface.Present(&stubScreen{title: "modal"}, false)
	surface.Dismiss(false)
	assert.Len(t, listener.events, 3)
}

func TestStackSurfaceRootInvariant(t *testing.T) {
	surface := navigation.NewStackSurface()
	root := &stubScreen{title: "root"}
	surface.SetRoot(root, false)

	assert.Nil(t, surface.Pop(false), "the root is never popped")
	assert.Nil(t, surface.PopToRoot(false))
	assert.Equal(t, 1, surface.Depth())
}

func TestStackSurfaceHeaderHidden(t *testing.T) {
	surface := navigation.NewStackSurface()
	surface.SetRoot(&stubScreen{title: "root"}, true)
	assert.True(t, surface.HeaderHidden())

	surface.SetRoot(&stubScreen{title: "other"}, false)
	assert.False(t, surface.HeaderHidden())
}

func TestContainerTitleFollowsTop(t *testing.T) {
	surface := navigation.NewStackSurface()
	container := surface.Container()
	assert.Equal(t, "", container.ScreenTitle())

	surface.SetRoot(&stubScreen{title: "root"}, false)
	surface.Push(&stubScreen{title: "top"}, false)
	assert.Equal(t, "top", container.ScreenTitle())

	assert.Equal(t, navigation.Screen(container), container.ToPresent())
}
