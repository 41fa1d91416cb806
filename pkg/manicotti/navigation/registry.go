package navigation

// completionRegistry maps Screen identity to a pending zero-argument
// completion. At most one completion per screen is held at a time; an entry
// is removed at the moment it is taken, never left behind after firing.
type completionRegistry struct {
	entries map[Screen]func()
}

func newCompletionRegistry() *completionRegistry {
	return &completionRegistry{entries: make(map[Screen]func())}
}

// register stores fn for s and reports whether a previous entry was
// replaced. Last write wins; the caller decides whether replacement is
// worth surfacing.
func (r *completionRegistry) register(s Screen, fn func()) (replaced bool) {
	_, replaced = r.entries[s]
	r.entries[s] = fn
	return replaced
}

// take removes and returns the entry for s. Looking up a screen with no
// entry is a no-op by design: after PopToRoot has fired a completion from
// its removed list, the generic transition event for the same mutation must
// find nothing.
func (r *completionRegistry) take(s Screen) (func(), bool) {
	fn, ok := r.entries[s]
	if ok {
		delete(r.entries, s)
	}
	return fn, ok
}

// drop discards the entry for s without invoking it.
func (r *completionRegistry) drop(s Screen) bool {
	_, ok := r.entries[s]
	if ok {
		delete(r.entries, s)
	}
	return ok
}

func (r *completionRegistry) size() int {
	return len(r.entries)
}
