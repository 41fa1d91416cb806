package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the navigation surface chrome and
// the built-in screens.
type Theme struct {
	HighlightColor       sdl.Color // Focused item background
	AccentColor          sdl.Color // Header underline, hint pill background
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on focused items
	HintColor            sdl.Color // Back hints, secondary text
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

// DefaultTheme returns the built-in dark theme used when no theme file is
// supplied.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(0x00A0A0),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0x9C9C9C),
		BackgroundColor:      HexToColor(0x101010),
		FontPath:             fontPath,
	}
}

var currentTheme Theme

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// themeFile is the on-disk TOML shape of a theme. Colors are hex strings,
// "#RRGGBB" or "RRGGBB".
type themeFile struct {
	Highlight       string `toml:"highlight"`
	Accent          string `toml:"accent"`
	Text            string `toml:"text"`
	HighlightedText string `toml:"highlighted_text"`
	Hint            string `toml:"hint"`
	Background      string `toml:"background"`
	FontPath        string `toml:"font_path"`
	BackgroundImage string `toml:"background_image"`
}

// LoadThemeFile reads a TOML theme file. Colors omitted from the file keep
// the default theme's values, so partial themes are valid.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}

	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}

	theme := DefaultTheme(tf.FontPath)
	theme.BackgroundImagePath = tf.BackgroundImage

	for _, field := range []struct {
		raw  string
		dest *sdl.Color
	}{
		{tf.Highlight, &theme.HighlightColor},
		{tf.Accent, &theme.AccentColor},
		{tf.Text, &theme.TextColor},
		{tf.HighlightedText, &theme.HighlightedTextColor},
		{tf.Hint, &theme.HintColor},
		{tf.Background, &theme.BackgroundColor},
	} {
		if field.raw == "" {
			continue
		}
		c, err := ParseHexColor(field.raw)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", path, err)
		}
		*field.dest = c
	}

	return theme, nil
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque sdl.Color.
func ParseHexColor(s string) (sdl.Color, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != 6 {
		return sdl.Color{}, fmt.Errorf("invalid color %q: want RRGGBB", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexToColor(uint32(v)), nil
}
