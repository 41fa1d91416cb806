package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// MeasureText returns the rendered width of text in the given font, or 0
// when measurement fails.
func MeasureText(font *ttf.Font, text string) int32 {
	if font == nil || text == "" {
		return 0
	}
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

// RenderTextAt draws text at x,y in the given color. Failures are silently
// skipped; a frame with a missing label beats a dead render loop.
func RenderTextAt(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) {
	if font == nil || text == "" {
		return
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
}

// TextTexture renders text to a standalone texture and returns it with its
// dimensions. The caller owns the texture; pair with TextureCache to avoid
// re-rendering static chrome every frame.
func TextTexture(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, int32, int32, error) {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, 0, 0, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, err
	}
	return texture, surface.W, surface.H, nil
}
