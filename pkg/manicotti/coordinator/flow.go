package coordinator

// RunPushed starts child as a horizontal flow on the parent's (shared)
// Router: the child is registered in the parent's child set, its screen is
// pushed with a completion that detaches it, and only then does its flow
// logic start.
//
// Registration happens before the push so the parent is tracking the child
// before any completion can fire. The detach completion fires exactly once,
// whether the child's screen is popped programmatically or by user back
// navigation.
//
// The child must resolve to the screen it manages directly. If it resolves
// to a stack container (the Base default), the push is refused, the child
// is detached again and the error is returned.
func RunPushed(parent *Base, child Coordinator, animated bool) error {
	parent.AddChild(child)
	err := parent.Router().Push(child, animated, func() {
		parent.RemoveChild(child)
	})
	if err != nil {
		parent.RemoveChild(child)
		return err
	}
	child.Start()
	return nil
}

// RunPresented starts child as a vertical flow: the child owns a Router of
// its own, built around a fresh surface, and the whole child stack is
// presented in the parent surface's overlay slot.
//
// A vertical flow ends only when its own logic finishes. RunPresented wires
// the child's onCompletion slot to detach the child from the parent and
// dismiss the overlay on the presenting router; the flow triggers it
// through Finish.
func RunPresented(parent *Base, child Flow, animated bool) {
	parent.AddChild(child)
	child.SetOnCompletion(func() {
		parent.RemoveChild(child)
		parent.Router().Dismiss(animated, nil)
	})
	parent.Router().Present(child, animated)
	child.Start()
}
