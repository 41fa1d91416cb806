// Package navigation provides the stack-navigation core of the manicotti
// framework: an abstract navigation surface, a Router that owns it, and a
// completion registry that turns "this screen left the stack" into an
// exactly-once callback.
//
// The problem this package solves is attribution of back-navigation. When a
// flow-owning object (see the coordinator package) pushes its screen onto a
// shared stack, the flow can end two ways: its own logic finishes, or the
// user navigates back. The second case produces no signal the flow owner can
// observe directly. The Router closes that gap: it is the sole subscriber to
// the surface's transition-finished event, and after every transition it
// checks whether the previously topmost screen is still on the stack. If it
// is not, the screen was popped, by whatever means, and its registered
// completion fires exactly once.
//
// # Basic Usage
//
//	surface := navigation.NewStackSurface()
//	router := navigation.NewRouter(surface)
//
//	router.SetRoot(home, false)
//	router.Push(detail, true, func() {
//	    // detail left the stack: programmatic pop and user back
//	    // navigation both land here, exactly once.
//	})
//
// Programmatic pops go through router.Pop. User-driven back navigation calls
// Pop on the surface directly; the Router observes it through the same
// transition event and the completion is indistinguishable from the
// programmatic case.
//
// # Identity
//
// The completion registry is keyed by Screen identity, not by content. Two
// screens with identical titles are tracked independently. Implement Screen
// on a pointer type so that interface comparison means instance identity.
//
// # Surfaces
//
// StackSurface is the reference Surface: a plain in-memory stack plus a
// single overlay slot, with synchronous transition events. The SDL backend
// in the parent package builds on it. Tests drive StackSurface directly.
package navigation
