package display

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"sinecloud/internal/render"
)

// ImageSink is a headless display that writes every presented frame to a
// PNG file, replacing the previous one.
type ImageSink struct {
	*Framebuffer

	Path string
	// Scale enlarges the written image by an integer factor with
	// nearest-neighbour sampling. Values below 2 write the raster as is.
	Scale int
}

var _ render.Display = (*ImageSink)(nil)

// NewImageSink returns a w x h sink writing to path.
func NewImageSink(w, h int, path string, scale int) *ImageSink {
	return &ImageSink{
		Framebuffer: NewFramebuffer(w, h),
		Path:        path,
		Scale:       scale,
	}
}

// Snapshot returns the current frame at the sink's scale.
func (s *ImageSink) Snapshot() image.Image {
	src := s.Image()
	if s.Scale < 2 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*s.Scale, b.Dy()*s.Scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Present encodes the current frame to Path.
func (s *ImageSink) Present() (err error) {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()
	if err := png.Encode(f, s.Snapshot()); err != nil {
		return fmt.Errorf("encode snapshot %s: %w", s.Path, err)
	}
	return nil
}
