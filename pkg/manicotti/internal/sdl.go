package internal

import (
	"os"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"
)

var initialized = atomic.NewBool(false)

// Init brings up the SDL subsystems, the framework window and the fonts.
// Calling it a second time is a no-op.
func Init(title string, showBackground bool, winOpts WindowOptions) {
	if !initialized.CompareAndSwap(false, true) {
		GetFrameworkLogger().Warn("Init called twice; ignoring")
		return
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		GetFrameworkLogger().Error("SDL init failed", "error", err)
		os.Exit(1)
	}

	if img.Init(img.INIT_PNG|img.INIT_JPG) == 0 {
		GetFrameworkLogger().Warn("SDL_image init failed; background images disabled")
	}

	if err := ttf.Init(); err != nil {
		GetFrameworkLogger().Error("SDL_ttf init failed", "error", err)
		os.Exit(1)
	}

	OpenControllers()

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	window = initWindow(title, showBackground, winOpts)

	initFonts(DefaultFontSizes)
}

// SDLCleanup releases everything Init acquired. Must run before exit.
func SDLCleanup() {
	if !initialized.CompareAndSwap(true, false) {
		return
	}

	window.closeWindow()
	CloseControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
