package navigation

// Presentable is anything that can resolve itself to a concrete Screen.
// Screens satisfy it trivially by returning themselves; coordinators satisfy
// it by delegating to their Router (for a presented flow) or to a screen
// they manage directly (for a pushed flow).
type Presentable interface {
	ToPresent() Screen
}

// Screen is an identity-bearing unit of presentation. The Router never
// constructs screens; it only resolves Presentables handed to it and tracks
// the resulting Screen values by identity.
//
// Implement Screen on a pointer type. The completion registry and the
// coordinator child set compare screens with ==, which for pointer
// implementations means instance identity. Two screens with identical
// content are distinct entries.
type Screen interface {
	Presentable

	// ScreenTitle returns a short label for the screen, used by surface
	// chrome and logging. It carries no identity semantics.
	ScreenTitle() string
}

// Container marks a Screen that wraps an entire navigation Surface, such as
// the presentable form of a Router. Containers may be presented as overlays
// but never pushed: nesting one stack inside another is always a caller
// mistake, and Router.Push refuses it with ErrContainerPush.
type Container interface {
	Screen

	// ContainedSurface returns the Surface this screen wraps.
	ContainedSurface() Surface
}
