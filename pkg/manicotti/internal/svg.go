package internal

import (
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// BackChevronSVG is the built-in back indicator drawn in the navigation
// header. Kept as source so it rasterizes crisply at any chrome size.
const BackChevronSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <path d="M15.5 3.5 L7 12 L15.5 20.5 L17.6 18.4 L11.2 12 L17.6 5.6 Z" fill="#FFFFFF"/>
</svg>`

// RasterizeSVG renders SVG source into an RGBA image of the given size.
func RasterizeSVG(svg string, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return rgba, nil
}

// SVGTexture rasterizes SVG source straight into an SDL texture. The caller
// owns the texture.
func SVGTexture(renderer *sdl.Renderer, svg string, width, height int) (*sdl.Texture, error) {
	rgba, err := RasterizeSVG(svg, width, height)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(width), int32(height),
		32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
