// Package constants defines shared constants, types, and configuration
// values used throughout the manicotti navigation framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar overrides the window width in development mode.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar overrides the window height in development mode.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// ThemePathEnvVar overrides the theme file path passed in Options.
const ThemePathEnvVar = "THEME_PATH"

// LanguageEnvVar overrides the chrome language passed in Options.
const LanguageEnvVar = "MANICOTTI_LANG"

// DebugEnvVar enables framework debug logging when set.
const DebugEnvVar = "MANICOTTI_DEBUG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical
// hardware. The mapping lets the same navigation code run on devices with
// different controllers and on desktop keyboards in development mode.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) String() string {
	switch vb {
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unassigned"
	}
}

// Default timing and layout constants.
const (
	DefaultInputDelay               = 20 * time.Millisecond  // Debounce delay between input events
	DefaultTransitionDuration       = 150 * time.Millisecond // Slide transition length for animated pushes/pops
	DefaultHeaderHeight       int32 = 56                     // Height of the navigation header chrome
	DefaultBackCoolDown             = 250 * time.Millisecond // Minimum spacing between hardware back presses
)
