package navigation

// TransitionEvent describes a stack transition that has just finished. The
// surface emits one after every stack mutation, whether it was requested
// through a Router method or by an out-of-band user gesture.
type TransitionEvent struct {
	// From is the screen that was topmost immediately before the
	// transition, or nil if the stack was empty. Whether From is still on
	// the stack afterwards is what distinguishes a push from a pop.
	From Screen
}

// TransitionListener receives transition-finished events from a Surface.
// A Surface has at most one listener; the Router installs itself as that
// listener and nothing else should subscribe.
type TransitionListener interface {
	TransitionFinished(TransitionEvent)
}

// Surface is the stack-and-overlay presentation primitive a Router drives.
// The in-memory StackSurface is the reference implementation; the SDL
// backend in the parent package embeds it and adds rendering and input.
//
// Surfaces are confined to the thread that owns them. None of these methods
// may be called concurrently.
type Surface interface {
	// Screens returns the current stack, index 0 is the root.
	Screens() []Screen

	// Contains reports whether s is currently on the stack.
	Contains(s Screen) bool

	// Push appends s to the stack.
	Push(s Screen, animated bool)

	// Pop removes and returns the topmost screen. The root is never
	// popped; Pop returns nil when only the root remains.
	Pop(animated bool) Screen

	// PopToRoot truncates the stack to its root and returns the removed
	// screens, topmost first.
	PopToRoot(animated bool) []Screen

	// SetRoot replaces the entire stack with s. hideHeader asks the
	// surface to suppress its navigation chrome for this root.
	SetRoot(s Screen, hideHeader bool)

	// Present shows s in the overlay slot. At most one overlay is active;
	// presenting while an overlay is up is a caller misuse and the
	// previous overlay is replaced.
	Present(s Screen, animated bool)

	// Dismiss clears the overlay slot.
	Dismiss(animated bool)

	// Overlay returns the active overlay screen, or nil.
	Overlay() Screen

	// Container returns the presentable form of the whole surface, for
	// presenting this stack inside another one.
	Container() Container

	// SetTransitionListener installs the single transition subscriber,
	// replacing any previous one.
	SetTransitionListener(l TransitionListener)
}
