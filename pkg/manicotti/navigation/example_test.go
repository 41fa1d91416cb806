package navigation_test

import (
	"fmt"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/navigation"
)

// exampleScreen is a stand-in for a real screen; on a device this would be
// an SDL-drawn view such as manicotti.Menu.
type exampleScreen struct {
	title string
}

func (s *exampleScreen) ToPresent() navigation.Screen { return s }
func (s *exampleScreen) ScreenTitle() string          { return s.title }

// Example demonstrates completion tracking across programmatic pops and
// user back gestures sharing one code path.
func Example() {
	surface := navigation.NewStackSurface()
	router := navigation.NewRouter(surface)

	router.SetRoot(&exampleScreen{title: "library"}, false)

	detail := &exampleScreen{title: "game detail"}
	_ = router.Push(detail, true, func() {
		fmt.Println("detail flow finished")
	})

	// Programmatic pop: the completion fires through the transition event.
	router.Pop(true)

	settings := &exampleScreen{title: "settings"}
	_ = router.Push(settings, true, func() {
		fmt.Println("settings flow finished")
	})

	// User back gesture: the surface is mutated out-of-band, but the
	// router observes the same transition event and the completion is
	// indistinguishable from the programmatic case.
	surface.Pop(true)

	fmt.Println("pending:", router.PendingCompletions())

	// Output:
	// detail flow finished
	// settings flow finished
	// pending: 0
}

// Example_popToRoot demonstrates that deep unwinds fire every removed
// screen's completion exactly once, topmost first.
func Example_popToRoot() {
	surface := navigation.NewStackSurface()
	router := navigation.NewRouter(surface)

	router.SetRoot(&exampleScreen{title: "home"}, false)

	for _, name := range []string{"a", "b", "c"} {
		name := name
		_ = router.Push(&exampleScreen{title: name}, false, func() {
			fmt.Println("left:", name)
		})
	}

	router.PopToRoot(false)
	fmt.Println("depth:", surface.Depth())

	// Output:
	// left: c
	// left: b
	// left: a
	// depth: 1
}
