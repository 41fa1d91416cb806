package navigation

import (
	"errors"
	"log/slog"
)

// ErrContainerPush is returned by Router.Push when the resolved screen is a
// Container. A surface wrapping an entire stack must be presented, never
// pushed onto another stack.
var ErrContainerPush = errors.New("navigation: cannot push a stack container onto a stack")

// Router owns exactly one Surface and its completion registry for the
// Router's whole lifetime. It is the surface's sole transition listener and
// the single source of truth for "this screen left the stack".
//
// A Router corresponds to one physical stack. Flows pushed onto the same
// stack share one Router by reference; a flow presented in its own stack
// constructs a fresh Surface and a fresh Router around it.
//
// Router is a Presentable: it resolves to the surface's container screen,
// which is the correct form for presenting the whole stack vertically.
type Router struct {
	surface     Surface
	completions *completionRegistry
	logger      *slog.Logger
}

// NewRouter creates a Router around surface and installs it as the
// surface's transition listener.
func NewRouter(surface Surface) *Router {
	r := &Router{
		surface:     surface,
		completions: newCompletionRegistry(),
		logger:      slog.New(slog.DiscardHandler),
	}
	surface.SetTransitionListener(r)
	return r
}

// SetLogger replaces the router's logger. The default discards everything.
func (r *Router) SetLogger(logger *slog.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Surface returns the surface this router owns.
func (r *Router) Surface() Surface {
	return r.surface
}

// ToPresent resolves the router to its surface's container screen.
func (r *Router) ToPresent() Screen {
	return r.surface.Container()
}

// Present resolves module and shows it in the surface's overlay slot.
// Overlay dismissal has no back-gesture equivalent, so presented screens
// get no completion tracking; supply the completion to Dismiss instead.
func (r *Router) Present(module Presentable, animated bool) {
	screen := module.ToPresent()
	r.logger.Debug("presenting overlay", "screen", screen.ScreenTitle())
	r.surface.Present(screen, animated)
}

// Dismiss clears the overlay slot and invokes completion directly.
func (r *Router) Dismiss(animated bool, completion func()) {
	r.surface.Dismiss(animated)
	if completion != nil {
		completion()
	}
}

// Push resolves module and appends the screen to the stack. If completion
// is non-nil it is registered against the screen's identity and fires
// exactly once when the screen leaves the stack, whether by a programmatic
// pop or by user back navigation.
//
// Pushing a screen that already holds a pending completion replaces the
// earlier one; the replaced completion will never fire. The replacement is
// logged at warn level.
//
// Pushing a Container returns ErrContainerPush and mutates nothing.
func (r *Router) Push(module Presentable, animated bool, completion func()) error {
	screen := module.ToPresent()
	if _, ok := screen.(Container); ok {
		r.logger.Warn("refusing to push stack container", "screen", screen.ScreenTitle())
		return ErrContainerPush
	}

	if completion != nil {
		if replaced := r.completions.register(screen, completion); replaced {
			r.logger.Warn("replacing pending completion for re-pushed screen",
				"screen", screen.ScreenTitle())
		}
	}

	r.logger.Debug("pushing screen", "screen", screen.ScreenTitle())
	r.surface.Push(screen, animated)
	return nil
}

// Pop removes the topmost screen. Its completion, if any, fires through the
// transition event, on the same path a user back gesture takes.
func (r *Router) Pop(animated bool) {
	r.surface.Pop(animated)
}

// PopToRoot truncates the stack to its root. Completions for every removed
// screen fire exactly once each, topmost first, driven from the known list
// of removed screens.
func (r *Router) PopToRoot(animated bool) {
	removed := r.surface.PopToRoot(animated)
	for _, screen := range removed {
		r.runCompletion(screen)
	}
}

// SetRoot replaces the entire stack with the screen module resolves to.
// This is a reset, not a navigation-back event: pending completions for the
// discarded screens do not fire. They are dropped from the registry so no
// entry is left dangling; callers relying on completions for cleanup must
// do that cleanup themselves before replacing the root.
func (r *Router) SetRoot(module Presentable, hideHeader bool) {
	screen := module.ToPresent()
	for _, discarded := range r.surface.Screens() {
		if discarded == screen {
			continue
		}
		if r.completions.drop(discarded) {
			r.logger.Debug("dropping pending completion on root replacement",
				"screen", discarded.ScreenTitle())
		}
	}
	r.logger.Debug("replacing stack root", "screen", screen.ScreenTitle())
	r.surface.SetRoot(screen, hideHeader)
}

// PendingCompletions returns the number of registered, not yet fired
// completions. Useful for leak checks in tests and debug overlays.
func (r *Router) PendingCompletions() int {
	return r.completions.size()
}

// TransitionFinished implements TransitionListener. It is invoked by the
// surface after every stack mutation, including mutations the Router did
// not initiate. If the previously topmost screen is no longer on the stack
// it was popped, by whatever trigger, and its completion fires.
func (r *Router) TransitionFinished(ev TransitionEvent) {
	if ev.From == nil || r.surface.Contains(ev.From) {
		return
	}
	r.runCompletion(ev.From)
}

func (r *Router) runCompletion(screen Screen) {
	fn, ok := r.completions.take(screen)
	if !ok {
		return
	}
	r.logger.Debug("screen left the stack", "screen", screen.ScreenTitle())
	fn()
}
