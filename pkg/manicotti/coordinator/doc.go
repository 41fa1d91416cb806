// Package coordinator implements flow ownership on top of the navigation
// Router. A coordinator owns one flow's logic, a reference to the Router
// whose stack it lives on, and the child coordinators it has spawned.
//
// Children are kept alive by their parent's child set and detached by
// exactly one completion path:
//
//   - A pushed ("horizontal") child shares the parent's Router. The parent
//     pushes the child's screen with a completion that removes the child
//     from the set, so back navigation tears the child down without the
//     child ever polling for its own removal.
//   - A presented ("vertical") child gets a Router of its own. It ends only
//     when its flow logic says so, through the onCompletion slot, which
//     removes it from the parent's set and dismisses its surface.
//
// RunPushed and RunPresented capture the two calling conventions, including
// the register-before-push ordering that guarantees the parent is tracking
// the child before any completion can fire.
//
// # A pushed child flow
//
//	type settingsFlow struct {
//	    *coordinator.Base
//	    screen navigation.Screen
//	}
//
//	// Pushed flows resolve to the screen they manage, never to the
//	// router's container.
//	func (f *settingsFlow) ToPresent() navigation.Screen { return f.screen }
//
//	func (f *settingsFlow) Start() { /* wire screen callbacks */ }
//
//	err := coordinator.RunPushed(parent, flow, true)
package coordinator
