package coordinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/coordinator"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/navigation"
)

type stubScreen struct {
	title string
}

func (s *stubScreen) ToPresent() navigation.Screen { return s }
func (s *stubScreen) ScreenTitle() string          { return s.title }

// pushedFlow is a horizontal flow: it shares the parent's router and
// resolves to the single screen it manages.
type pushedFlow struct {
	*coordinator.Base
	screen  *stubScreen
	started bool
}

func newPushedFlow(router *navigation.Router, title string) *pushedFlow {
	return &pushedFlow{
		Base:   coordinator.NewBase(router),
		screen: &stubScreen{title: title},
	}
}

func (f *pushedFlow) ToPresent() navigation.Screen { return f.screen }
func (f *pushedFlow) Start()                       { f.started = true }

// presentedFlow is a vertical flow: it owns a router of its own and keeps
// the Base default presentation (the whole stack).
type presentedFlow struct {
	*coordinator.Base
	started bool
}

func newPresentedFlow() *presentedFlow {
	surface := navigation.NewStackSurface()
	router := navigation.NewRouter(surface)
	f := &presentedFlow{Base: coordinator.NewBase(router)}
	router.SetRoot(&stubScreen{title: "child root"}, false)
	return f
}

func (f *presentedFlow) Start() { f.started = true }

func newParent(t *testing.T) (*coordinator.Base, *navigation.Router, *navigation.StackSurface) {
	t.Helper()
	surface := navigation.NewStackSurface()
	router := navigation.NewRouter(surface)
	router.SetRoot(&stubScreen{title: "root"}, false)
	return coordinator.NewBase(router), router, surface
}

func TestChildSetAddRemove(t *testing.T) {
	parent, router, _ := newParent(t)
	child := newPushedFlow(router, "child")

	parent.AddChild(child)
	parent.AddChild(child)
	assert.Equal(t, 1, parent.ChildCount(), "double registration keeps one entry")
	assert.True(t, parent.HasChild(child))

	parent.RemoveChild(child)
	parent.RemoveChild(child)
	assert.Equal(t, 0, parent.ChildCount(), "removal is idempotent")
	assert.False(t, parent.HasChild(child))
}

func TestRunPushedDetachesOnBackNavigation(t *testing.T) {
	parent, router, surface := newParent(t)
	child := newPushedFlow(router, "settings")

	require.NoError(t, coordinator.RunPushed(parent, child, true))
	assert.True(t, child.started)
	assert.True(t, parent.HasChild(child))
	assert.True(t, surface.Contains(child.screen))

	// User backs out of the child's screen.
	surface.Pop(true)

	assert.False(t, parent.HasChild(child), "back navigation detaches the child")
	assert.False(t, surface.Contains(child.screen))
	assert.Equal(t, 0, router.PendingCompletions(), "the registry entry is gone once fired")
}

func TestRunPushedDetachesOnProgrammaticPop(t *testing.T) {
	parent, router, _ := newParent(t)
	child := newPushedFlow(router, "detail")

	require.NoError(t, coordinator.RunPushed(parent, child, false))
	router.Pop(false)

	assert.False(t, parent.HasChild(child))
	assert.Equal(t, 0, router.PendingCompletions())
}

func TestRunPushedRefusesContainerResolvingChild(t *testing.T) {
	parent, _, surface := newParent(t)

	// A vertical-style flow resolves to its router's container; pushing
	// it onto the shared stack is the misuse the router refuses.
	child := newPresentedFlow()

	err := coordinator.RunPushed(parent, child, false)
	require.ErrorIs(t, err, navigation.ErrContainerPush)
	assert.False(t, child.started, "a refused child is never started")
	assert.False(t, parent.HasChild(child), "a refused child is detached again")
	assert.Equal(t, 1, surface.Depth())
}

func TestRunPresentedLifecycle(t *testing.T) {
	parent, router, surface := newParent(t)
	child := newPresentedFlow()

	coordinator.RunPresented(parent, child, true)
	assert.True(t, child.started)
	assert.True(t, parent.HasChild(child))

	container, ok := surface.Overlay().(navigation.Container)
	require.True(t, ok, "the presented child occupies the overlay slot as a container")
	assert.Same(t, child.Router().Surface(), container.ContainedSurface())

	// The child's own logic decides it is done.
	child.Finish()

	assert.False(t, parent.HasChild(child), "finishing detaches the child")
	assert.Nil(t, surface.Overlay(), "finishing dismisses the overlay")
	assert.Equal(t, 0, router.PendingCompletions())
}

func TestFinishWithoutCompletionSlotIsNoop(t *testing.T) {
	_, router, _ := newParent(t)
	child := newPushedFlow(router, "loose")

	child.Finish()
}

func TestNestedPushedFlows(t *testing.T) {
	parent, router, surface := newParent(t)

	// Two levels of horizontal nesting on one shared router: the defect
	// this design exists to fix is misattributed back navigation when
	// flows nest more than one level deep.
	mid := newPushedFlow(router, "mid")
	require.NoError(t, coordinator.RunPushed(parent, mid, false))

	leaf := newPushedFlow(router, "leaf")
	require.NoError(t, coordinator.RunPushed(mid.Base, leaf, false))

	require.Equal(t, 3, surface.Depth())

	// Backing out of the leaf detaches it from mid, not from parent.
	surface.Pop(true)
	assert.False(t, mid.HasChild(leaf))
	assert.True(t, parent.HasChild(mid))

	// Backing out of mid detaches it from parent.
	surface.Pop(true)
	assert.False(t, parent.HasChild(mid))
	assert.Equal(t, 0, router.PendingCompletions())
}
