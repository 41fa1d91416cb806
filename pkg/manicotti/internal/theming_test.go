package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadThemeFile(t *testing.T) {
	path := writeTheme(t, `
highlight = "#FF0000"
accent = "00FF00"
background = "#000080"
font_path = "/mnt/SDCARD/System/fonts/UI.ttf"
background_image = "/mnt/SDCARD/bg.png"
`)

	theme, err := LoadThemeFile(path)
	require.NoError(t, err)

	assert.Equal(t, sdl.Color{R: 255, A: 255}, theme.HighlightColor)
	assert.Equal(t, sdl.Color{G: 255, A: 255}, theme.AccentColor)
	assert.Equal(t, sdl.Color{B: 128, A: 255}, theme.BackgroundColor)
	assert.Equal(t, "/mnt/SDCARD/System/fonts/UI.ttf", theme.FontPath)
	assert.Equal(t, "/mnt/SDCARD/bg.png", theme.BackgroundImagePath)

	// Omitted colors keep the defaults.
	assert.Equal(t, DefaultTheme("").TextColor, theme.TextColor)
}

func TestLoadThemeFileRejectsBadColor(t *testing.T) {
	path := writeTheme(t, `highlight = "red"`)

	_, err := LoadThemeFile(path)
	assert.Error(t, err)
}

func TestLoadThemeFileMissing(t *testing.T) {
	_, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FFA500")
	require.NoError(t, err)
	assert.Equal(t, sdl.Color{R: 255, G: 165, B: 0, A: 255}, c)

	_, err = ParseHexColor("#FFF")
	assert.Error(t, err)
}
