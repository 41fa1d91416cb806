package manicotti

import (
	"time"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/navigation"
	"github.com/veandco/go-sdl2/sdl"
)

// View is the contract screens must satisfy to be drawn on the SDL
// Surface. The navigation core treats screens as opaque; the rendering
// backend needs two more capabilities: handling a button press and drawing
// a frame.
//
// HandleInput reports whether the button was consumed. An unconsumed B
// press on a stacked screen becomes a back gesture: the surface pops
// out-of-band and the Router picks the transition up exactly as it would a
// programmatic pop.
type View interface {
	navigation.Screen
	HandleInput(button constants.VirtualButton) bool
	Draw(w *internal.Window)
}

// Surface is the SDL-backed navigation surface. It embeds the in-memory
// StackSurface for the stack and overlay bookkeeping and adds the render
// loop, header chrome, slide transitions and input routing.
//
// Only the application's root Surface runs the loop. Surfaces created for
// vertical flows are drawn through their container when presented.
type Surface struct {
	*navigation.StackSurface

	cache     *internal.TextureCache
	running   bool
	lastInput time.Time
}

// NewSurface creates an SDL-backed surface. The window itself is shared
// framework state brought up by Init.
func NewSurface() *Surface {
	s := &Surface{
		StackSurface: navigation.NewStackSurface(),
		cache:        internal.NewTextureCache(0),
	}
	s.SetContainerSurface(s)
	return s
}

// Push appends screen to the stack, sliding it in from the right when
// animated and a window is available.
func (s *Surface) Push(screen navigation.Screen, animated bool) {
	if animated {
		s.slide(s.Top(), screen, 1)
	}
	s.StackSurface.Push(screen, animated)
}

// Pop removes the topmost screen, sliding it out to the right when
// animated. The transition event fires only after the visual transition,
// so completions never observe a mid-animation stack.
func (s *Surface) Pop(animated bool) navigation.Screen {
	if animated && s.Depth() > 1 {
		screens := s.Screens()
		s.slide(screens[len(screens)-1], screens[len(screens)-2], -1)
	}
	return s.StackSurface.Pop(animated)
}

// Run drives the render loop until Stop is called or SDL reports a quit
// event. It must run on the thread that called Init.
func (s *Surface) Run() error {
	w := internal.GetWindow()
	if w == nil {
		return NewInfrastructureError("run", ErrNotInitialized)
	}

	s.running = true
	for s.running {
		s.drainBackPresses()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				s.running = false
				break
			}

			input := internal.TranslateEvent(event)
			if input == nil || !input.Pressed {
				continue
			}
			if time.Since(s.lastInput) < constants.DefaultInputDelay {
				continue
			}
			s.lastInput = time.Now()

			s.dispatch(input.Button)
		}

		s.drawFrame(w)
		w.Present()
	}
	return nil
}

// Stop ends the render loop after the current frame.
func (s *Surface) Stop() {
	s.running = false
}

// drainBackPresses turns hardware back-button presses, delivered by the
// evdev watcher, into back gestures on whichever stack is active.
func (s *Surface) drainBackPresses() {
	if backWatcher == nil {
		return
	}
	for {
		select {
		case <-backWatcher.Presses():
			if active, _ := s.activeTarget(); active != nil {
				active.Pop(true)
			}
		default:
			return
		}
	}
}

// activeTarget resolves which surface and screen input should reach,
// descending through presented containers. A non-container overlay is
// modal: it receives input but has no stack to pop.
func (s *Surface) activeTarget() (navigation.Surface, navigation.Screen) {
	var current navigation.Surface = s
	for {
		overlay := current.Overlay()
		if overlay == nil {
			return current, topOf(current)
		}
		if container, ok := overlay.(navigation.Container); ok {
			current = container.ContainedSurface()
			continue
		}
		return nil, overlay
	}
}

func (s *Surface) dispatch(button constants.VirtualButton) {
	surface, target := s.activeTarget()

	if view, ok := target.(View); ok && view.HandleInput(button) {
		return
	}

	// Unconsumed B on a stacked screen is the back gesture. The pop
	// bypasses any Router on purpose; the Router observes the resulting
	// transition event, which is the whole point of the design.
	if button == constants.VirtualButtonB && surface != nil {
		surface.Pop(true)
	}
}

func (s *Surface) drawFrame(w *internal.Window) {
	w.Clear()

	var current navigation.Surface = s
	for {
		s.drawStack(w, current)

		overlay := current.Overlay()
		if overlay == nil {
			return
		}

		s.dimLayer(w)
		if container, ok := overlay.(navigation.Container); ok {
			current = container.ContainedSurface()
			continue
		}
		s.drawScreen(w, overlay)
		return
	}
}

func (s *Surface) drawStack(w *internal.Window, surface navigation.Surface) {
	top := topOf(surface)
	if top == nil {
		return
	}

	headerHidden := false
	if h, ok := surface.(interface{ HeaderHidden() bool }); ok {
		headerHidden = h.HeaderHidden()
	}
	if !headerHidden {
		s.drawHeader(w, surface, top)
	}
	s.drawScreen(w, top)
}

func (s *Surface) drawScreen(w *internal.Window, screen navigation.Screen) {
	if view, ok := screen.(View); ok {
		view.Draw(w)
		return
	}

	// Not a View: render a placeholder so misconfigured screens are
	// visible instead of silently black.
	font := internal.Fonts.MediumFont
	title := screen.ScreenTitle()
	x := (w.GetWidth() - internal.MeasureText(font, title)) / 2
	internal.RenderTextAt(w.Renderer, font, title, x, w.GetHeight()/2, internal.GetTheme().HintColor)
}

// drawHeader renders the navigation chrome: the top screen's title and,
// below the root, the chevron plus localized back hint.
func (s *Surface) drawHeader(w *internal.Window, surface navigation.Surface, top navigation.Screen) {
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	if font == nil {
		return
	}

	headerH := constants.DefaultHeaderHeight
	textY := (headerH - int32(font.Height())) / 2

	title := top.ScreenTitle()
	x := (w.GetWidth() - internal.MeasureText(font, title)) / 2
	internal.RenderTextAt(w.Renderer, font, title, x, textY, theme.TextColor)

	if len(surface.Screens()) > 1 {
		iconSize := headerH / 2
		iconY := (headerH - iconSize) / 2
		if chevron := s.chevronTexture(w, iconSize); chevron != nil {
			w.Renderer.Copy(chevron, nil, &sdl.Rect{X: 16, Y: iconY, W: iconSize, H: iconSize})
		}
		if hint := s.hintTexture(w, internal.T("back"), theme.HintColor); hint != nil {
			_, _, hw, hh, _ := hint.Query()
			w.Renderer.Copy(hint, nil, &sdl.Rect{X: 16 + iconSize + 8, Y: textY, W: hw, H: hh})
		}
	}

	accent := theme.AccentColor
	w.Renderer.SetDrawColor(accent.R, accent.G, accent.B, accent.A)
	w.Renderer.FillRect(&sdl.Rect{X: 0, Y: headerH - 2, W: w.GetWidth(), H: 2})
}

// hintTexture renders the back hint once and serves it from the cache on
// later frames; the string only changes with the locale.
func (s *Surface) hintTexture(w *internal.Window, text string, color sdl.Color) *sdl.Texture {
	key := "hint:" + text
	if texture := s.cache.Lookup(key); texture != nil {
		return texture
	}
	texture, _, _, err := internal.TextTexture(w.Renderer, internal.Fonts.SmallFont, text, color)
	if err != nil {
		return nil
	}
	s.cache.Store(key, texture)
	return texture
}

func (s *Surface) chevronTexture(w *internal.Window, size int32) *sdl.Texture {
	if texture := s.cache.Lookup("chevron"); texture != nil {
		return texture
	}
	texture, err := internal.SVGTexture(w.Renderer, internal.BackChevronSVG, int(size), int(size))
	if err != nil {
		internal.GetFrameworkLogger().Error("Failed to rasterize back chevron", "error", err)
		return nil
	}
	s.cache.Store("chevron", texture)
	return texture
}

// dimLayer darkens everything drawn so far, separating an overlay from the
// stack beneath it.
func (s *Surface) dimLayer(w *internal.Window) {
	w.Renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	w.Renderer.SetDrawColor(0, 0, 0, 160)
	w.Renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: w.GetWidth(), H: w.GetHeight()})
}

// slide animates a horizontal transition between two screens. direction is
// 1 for a push (incoming slides in from the right) and -1 for a pop.
// Headless surfaces and screens without a View skip the animation; the
// visual style is deliberately minimal.
func (s *Surface) slide(outgoing, incoming navigation.Screen, direction int) {
	w := internal.GetWindow()
	if w == nil || outgoing == nil || incoming == nil {
		return
	}

	fromTex := s.snapshot(w, outgoing)
	toTex := s.snapshot(w, incoming)
	if fromTex == nil || toTex == nil {
		if fromTex != nil {
			fromTex.Destroy()
		}
		if toTex != nil {
			toTex.Destroy()
		}
		return
	}
	defer fromTex.Destroy()
	defer toTex.Destroy()

	width := w.GetWidth()
	height := w.GetHeight()
	start := sdl.GetTicks64()
	duration := uint64(constants.DefaultTransitionDuration.Milliseconds())

	for {
		elapsed := sdl.GetTicks64() - start
		if elapsed >= duration {
			break
		}
		progress := float64(elapsed) / float64(duration)
		offset := int32(progress * float64(width))

		w.Clear()
		if direction > 0 {
			w.Renderer.Copy(fromTex, nil, &sdl.Rect{X: -offset, Y: 0, W: width, H: height})
			w.Renderer.Copy(toTex, nil, &sdl.Rect{X: width - offset, Y: 0, W: width, H: height})
		} else {
			w.Renderer.Copy(toTex, nil, &sdl.Rect{X: -width + offset, Y: 0, W: width, H: height})
			w.Renderer.Copy(fromTex, nil, &sdl.Rect{X: offset, Y: 0, W: width, H: height})
		}
		w.Present()
	}
}

// snapshot renders a screen into a target texture for use during
// transitions.
func (s *Surface) snapshot(w *internal.Window, screen navigation.Screen) *sdl.Texture {
	view, ok := screen.(View)
	if !ok {
		return nil
	}

	texture, err := w.Renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_RGBA8888), sdl.TEXTUREACCESS_TARGET, w.GetWidth(), w.GetHeight())
	if err != nil {
		return nil
	}

	w.Renderer.SetRenderTarget(texture)
	w.Clear()
	view.Draw(w)
	w.Renderer.SetRenderTarget(nil)
	return texture
}

func topOf(surface navigation.Surface) navigation.Screen {
	screens := surface.Screens()
	if len(screens) == 0 {
		return nil
	}
	return screens[len(screens)-1]
}
