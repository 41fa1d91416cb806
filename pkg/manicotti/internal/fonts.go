package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the framework fonts at the standard sizes.
type FontSet struct {
	SmallFont  *ttf.Font
	MediumFont *ttf.Font
	LargeFont  *ttf.Font
}

// FontSizes configures the point sizes loaded into the FontSet.
type FontSizes struct {
	Small  int
	Medium int
	Large  int
}

// DefaultFontSizes are tuned for the 640x480-class displays most target
// devices ship with.
var DefaultFontSizes = FontSizes{Small: 18, Medium: 24, Large: 32}

// Fonts is the active font set, populated by initFonts.
var Fonts FontSet

func initFonts(sizes FontSizes) {
	path := GetTheme().FontPath
	if path == "" {
		GetFrameworkLogger().Error("No font path in theme; text rendering disabled")
		return
	}

	open := func(size int) *ttf.Font {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			GetFrameworkLogger().Error("Failed to open font", "path", path, "size", size, "error", err)
			return nil
		}
		return font
	}

	Fonts = FontSet{
		SmallFont:  open(sizes.Small),
		MediumFont: open(sizes.Medium),
		LargeFont:  open(sizes.Large),
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.SmallFont, Fonts.MediumFont, Fonts.LargeFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
