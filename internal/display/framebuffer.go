// Package display provides the rasters the render loop draws into: an
// in-memory framebuffer, a desktop window that shows it, and a PNG sink.
package display

import (
	"image"
	"image/color"

	"sinecloud/internal/geom"
)

// Framebuffer is a software RGBA raster. Draws outside its bounds are
// dropped.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer allocates a w x h framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image. It is overwritten by later draws.
func (f *Framebuffer) Image() *image.RGBA { return f.img }

// Size returns the raster dimensions in pixels.
func (f *Framebuffer) Size() (w, h int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole raster with bg.
func (f *Framebuffer) Clear(bg geom.Color) {
	c := toRGBA(bg)
	pix := f.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// DrawPoint sets one pixel.
func (f *Framebuffer) DrawPoint(x, y int, c geom.Color) {
	if !image.Pt(x, y).In(f.img.Rect) {
		return
	}
	col := toRGBA(c)
	offset := f.img.PixOffset(x, y)
	f.img.Pix[offset] = col.R
	f.img.Pix[offset+1] = col.G
	f.img.Pix[offset+2] = col.B
	f.img.Pix[offset+3] = col.A
}

// Present is a no-op; the image is always current.
func (f *Framebuffer) Present() error { return nil }

// toRGBA truncates each channel to a byte, clamping to [0,255].
func toRGBA(c geom.Color) color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

func channel(v float32) uint8 {
	switch {
	case !(v > 0): // also catches NaN
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
