package internal

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer with the state the navigation
// surface needs.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	hasVSync          bool
	lastPresentTime   uint64
}

var window *Window

func initWindow(title string, displayBackground bool, winOpts WindowOptions) *Window {
	width, height := int32(640), int32(480)
	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		width, height = mode.W, mode.H
	} else {
		GetFrameworkLogger().Error("Failed to get display mode", "error", err)
	}

	x, y := int32(0), int32(0)
	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = devDimension(constants.WindowWidthEnvVar, 1024)
		height = devDimension(constants.WindowHeightEnvVar, 768)
	}

	GetFrameworkLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetFrameworkLogger().Error("Failed to create renderer", "error", err)
		os.Exit(1)
	}
	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	w := &Window{
		Window:            sdlWindow,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		hasVSync:          vsync,
	}
	w.loadBackground()
	return w
}

func devDimension(envVar string, fallback int32) int32 {
	v := os.Getenv(envVar)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		GetFrameworkLogger().Warn("Invalid window dimension; using default", "var", envVar, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) loadBackground() {
	theme := GetTheme()
	if theme.BackgroundImagePath == "" {
		w.Background = nil
		return
	}

	texture, err := img.LoadTexture(w.Renderer, theme.BackgroundImagePath)
	if err != nil {
		GetFrameworkLogger().Warn("Failed to load background image", "path", theme.BackgroundImagePath, "error", err)
		w.Background = nil
		return
	}
	w.Background = texture
}

func (w *Window) closeWindow() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// GetWindow returns the framework window, nil before Init.
func GetWindow() *Window {
	return window
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Clear fills the window with the theme background color and draws the
// background image if one is configured.
func (w *Window) Clear() {
	bg := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	w.Renderer.Clear()

	if w.DisplayBackground && w.Background != nil {
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{X: 0, Y: 0, W: w.GetWidth(), H: w.GetHeight()})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing when
// VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// ResetBackground reloads the background image after a theme change.
func ResetBackground() {
	window.loadBackground()
}
