// Package manicotti is a coordinator-based navigation framework for
// graphical applications on embedded Linux devices, particularly handheld
// gaming consoles running custom firmware.
//
// The navigation core lives in the navigation and coordinator subpackages
// and is platform-free: a Router owns a stack of screens and fires an
// exactly-once completion when a screen leaves it, and coordinators use
// that signal to tear down flow ownership trees. This package supplies the
// SDL2 backend: window and renderer management, a Surface implementation
// that renders the stack and turns the device's back control into
// out-of-band pops, theming, localization of chrome strings, and a basic
// Menu screen.
//
//	manicotti.Init(manicotti.Options{WindowTitle: "Library"})
//	defer manicotti.Close()
//
//	router := manicotti.NewRouter()
//	router.SetRoot(manicotti.NewMenu("Library", items), false)
//
//	surface := router.Surface().(*manicotti.Surface)
//	surface.Run()
package manicotti

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/navigation"
)

// Options configures framework initialization.
type Options struct {
	WindowTitle    string                    // Window title displayed in windowed mode
	ShowBackground bool                      // Whether to render the theme background image
	WindowOptions  internal.WindowOptions    // SDL window flags (borderless, resizable, etc.)
	ThemePath      string                    // TOML theme file; built-in dark theme when empty
	FontPath       string                    // Font used when no theme file supplies one
	Language       string                    // BCP 47 tag for chrome strings (back hints, dialogs)
	BackButton     internal.BackButtonConfig // Hardware back control read from evdev, if any
	LogPath        string                    // Full path for the log file including filename
}

var backWatcher *internal.BackButtonWatcher

// Init initializes SDL, theming, localization and input handling. Must be
// called before any surface is run.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetFrameworkLogLevel(slog.LevelDebug)
	} else {
		internal.SetFrameworkLogLevel(slog.LevelError)
	}

	themePath := options.ThemePath
	if v := os.Getenv(constants.ThemePathEnvVar); v != "" {
		themePath = v
	}
	if themePath != "" {
		theme, err := internal.LoadThemeFile(themePath)
		if err != nil {
			internal.GetFrameworkLogger().Error("Failed to load theme; using defaults", "error", err)
			internal.SetTheme(internal.DefaultTheme(options.FontPath))
		} else {
			if theme.FontPath == "" {
				theme.FontPath = options.FontPath
			}
			internal.SetTheme(theme)
		}
	} else {
		internal.SetTheme(internal.DefaultTheme(options.FontPath))
	}

	language := options.Language
	if v := os.Getenv(constants.LanguageEnvVar); v != "" {
		language = v
	}
	internal.InitLocale(language)

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions)

	if options.BackButton.DevicePath != "" && !constants.IsDevMode() {
		watcher, err := internal.WatchBackButton(options.BackButton)
		if err != nil {
			internal.GetFrameworkLogger().Error("Failed to watch back button device",
				"path", options.BackButton.DevicePath, "error", err)
		} else {
			backWatcher = watcher
		}
	}
}

// Close releases all SDL resources and shuts down the framework. Must be
// called before program exit.
func Close() {
	if backWatcher != nil {
		backWatcher.Close()
		backWatcher = nil
	}
	internal.SDLCleanup()
}

// NewRouter creates a Router around a fresh SDL-backed Surface. Use one
// router per physical stack: the application root gets one, and each
// vertical (presented) flow constructs another.
func NewRouter() *navigation.Router {
	router := navigation.NewRouter(NewSurface())
	router.SetLogger(internal.GetFrameworkLogger())
	return router
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g.,
// "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
