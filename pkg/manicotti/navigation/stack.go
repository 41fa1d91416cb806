package navigation

// StackSurface is the in-memory reference implementation of Surface: an
// ordered screen stack plus a single overlay slot, with transition events
// delivered synchronously after each stack mutation.
//
// It has no rendering of its own. The SDL backend embeds it to get the
// bookkeeping and layers drawing and input on top; tests use it directly as
// a headless navigation surface.
type StackSurface struct {
	screens    []Screen
	overlay    Screen
	listener   TransitionListener
	container  *surfaceContainer
	hideHeader bool
}

// NewStackSurface creates an empty StackSurface. A root must be set (via
// SetRoot or a Router) before the surface is considered initialized.
func NewStackSurface() *StackSurface {
	s := &StackSurface{}
	s.container = &surfaceContainer{surface: s}
	return s
}

// Screens returns a copy of the current stack, root first.
func (s *StackSurface) Screens() []Screen {
	out := make([]Screen, len(s.screens))
	copy(out, s.screens)
	return out
}

// Contains reports whether sc is currently on the stack.
func (s *StackSurface) Contains(sc Screen) bool {
	for _, on := range s.screens {
		if on == sc {
			return true
		}
	}
	return false
}

// Depth returns the number of screens on the stack.
func (s *StackSurface) Depth() int {
	return len(s.screens)
}

// Top returns the topmost screen, or nil if the stack is empty.
func (s *StackSurface) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Push appends sc to the stack.
func (s *StackSurface) Push(sc Screen, animated bool) {
	from := s.Top()
	s.screens = append(s.screens, sc)
	s.notify(from)
}

// Pop removes and returns the topmost screen. The root is never popped.
func (s *StackSurface) Pop(animated bool) Screen {
	if len(s.screens) <= 1 {
		return nil
	}
	from := s.Top()
	s.screens = s.screens[:len(s.screens)-1]
	s.notify(from)
	return from
}

// PopToRoot truncates the stack to its root, returning the removed screens
// topmost first. Popping with one or zero screens on the stack is a no-op.
func (s *StackSurface) PopToRoot(animated bool) []Screen {
	if len(s.screens) <= 1 {
		return nil
	}
	from := s.Top()
	removed := make([]Screen, 0, len(s.screens)-1)
	for i := len(s.screens) - 1; i >= 1; i-- {
		removed = append(removed, s.screens[i])
	}
	s.screens = s.screens[:1]
	s.notify(from)
	return removed
}

// SetRoot replaces the entire stack with sc. This is a reset, not a
// navigation event, but a transition notification still fires so the
// listener can observe the mutation.
func (s *StackSurface) SetRoot(sc Screen, hideHeader bool) {
	from := s.Top()
	s.screens = s.screens[:0]
	s.screens = append(s.screens, sc)
	s.hideHeader = hideHeader
	s.notify(from)
}

// HeaderHidden reports whether navigation chrome was suppressed by the last
// SetRoot.
func (s *StackSurface) HeaderHidden() bool {
	return s.hideHeader
}

// Present places sc in the overlay slot. Overlay mutations are not stack
// transitions and emit no event.
func (s *StackSurface) Present(sc Screen, animated bool) {
	s.overlay = sc
}

// Dismiss clears the overlay slot.
func (s *StackSurface) Dismiss(animated bool) {
	s.overlay = nil
}

// Overlay returns the active overlay screen, or nil.
func (s *StackSurface) Overlay() Screen {
	return s.overlay
}

// Container returns the presentable form of this surface.
func (s *StackSurface) Container() Container {
	return s.container
}

// SetContainerSurface points the container at outer. Implementations that
// embed StackSurface call this with themselves, so that presenting the
// surface and descending back through the container round-trips to the full
// implementation instead of the inner stack.
func (s *StackSurface) SetContainerSurface(outer Surface) {
	s.container.surface = outer
}

// SetTransitionListener installs the single transition subscriber.
func (s *StackSurface) SetTransitionListener(l TransitionListener) {
	s.listener = l
}

func (s *StackSurface) notify(from Screen) {
	if s.listener != nil {
		s.listener.TransitionFinished(TransitionEvent{From: from})
	}
}

// surfaceContainer is the Screen a whole surface resolves to when presented
// inside another surface.
type surfaceContainer struct {
	surface Surface
}

func (c *surfaceContainer) ToPresent() Screen { return c }

func (c *surfaceContainer) ScreenTitle() string {
	if screens := c.surface.Screens(); len(screens) > 0 {
		return screens[len(screens)-1].ScreenTitle()
	}
	return ""
}

func (c *surfaceContainer) ContainedSurface() Surface { return c.surface }
