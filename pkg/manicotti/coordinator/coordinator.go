package coordinator

import (
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/navigation"
)

// Coordinator is a flow owner. Start begins the flow's logic; what that
// means is entirely up to the concrete flow. Coordinators are Presentables
// so they can be pushed or presented through a Router like any screen.
//
// Implement Coordinator on a pointer type; the child set compares
// coordinators by identity.
type Coordinator interface {
	navigation.Presentable

	// Start begins the flow's logic. It is invoked by the parent after
	// the child has been registered and its screen put on a surface.
	Start()
}

// Flow is a Coordinator whose router and completion slot are reachable,
// which is what RunPresented needs to tear a vertical flow down. Embedding
// Base provides everything except Start.
type Flow interface {
	Coordinator

	// Router returns the router this flow drives.
	Router() *navigation.Router

	// SetOnCompletion sets the callback invoked when the flow's own logic
	// finishes. The Router never invokes it; back navigation is reported
	// through push completions instead.
	SetOnCompletion(fn func())
}

// Base carries the state every coordinator needs: the Router reference, the
// owned children, and the onCompletion slot. Concrete flows embed *Base and
// add Start.
//
// Whether the Base owns its Router exclusively depends on the flow kind: a
// vertical flow constructs its own Router and is that Router's only user; a
// horizontal flow holds a shared reference to the Router of the stack it
// was pushed onto.
type Base struct {
	router       *navigation.Router
	children     []Coordinator
	onCompletion func()
}

// NewBase creates a Base driving router.
func NewBase(router *navigation.Router) *Base {
	return &Base{router: router}
}

// Router returns the router this coordinator drives.
func (b *Base) Router() *navigation.Router {
	return b.router
}

// ToPresent resolves the coordinator to its router's navigation surface.
// That is correct for vertical flows, where the whole stack is the unit
// being presented. Flows meant to be pushed onto a shared stack must
// override ToPresent to return the screen they manage directly; pushing the
// default form is refused by the Router with ErrContainerPush.
func (b *Base) ToPresent() navigation.Screen {
	return b.router.ToPresent()
}

// AddChild registers c in the owning set, keeping it alive until it is
// removed. Adding a child twice is a no-op.
func (b *Base) AddChild(c Coordinator) {
	for _, child := range b.children {
		if child == c {
			return
		}
	}
	b.children = append(b.children, c)
}

// RemoveChild detaches c from the owning set. Removing a child that is not
// present is a no-op: detachment is idempotent so that the single
// completion path can never double-free.
func (b *Base) RemoveChild(c Coordinator) {
	for i, child := range b.children {
		if child == c {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return
		}
	}
}

// HasChild reports whether c is currently owned.
func (b *Base) HasChild(c Coordinator) bool {
	for _, child := range b.children {
		if child == c {
			return true
		}
	}
	return false
}

// ChildCount returns the number of owned children.
func (b *Base) ChildCount() int {
	return len(b.children)
}

// SetOnCompletion sets the callback invoked by Finish.
func (b *Base) SetOnCompletion(fn func()) {
	b.onCompletion = fn
}

// Finish signals that the flow's own logic is done, for reasons other than
// back navigation (explicit cancel, confirm, and the like). It invokes the
// onCompletion slot if one is set. Vertical flows call this; horizontal
// flows end by being popped.
func (b *Base) Finish() {
	if b.onCompletion != nil {
		b.onCompletion()
	}
}
