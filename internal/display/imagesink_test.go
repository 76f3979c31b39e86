package display

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sinecloud/internal/geom"
)

func TestImageSinkPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	s := NewImageSink(4, 3, path, 1)
	s.Clear(geom.RGB(255, 255, 255))
	s.DrawPoint(2, 1, geom.RGB(0, 128, 0))
	require.NoError(t, s.Present())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
	assert.Equal(t, color.RGBAModel.Convert(color.RGBA{0, 128, 0, 255}), color.RGBAModel.Convert(img.At(2, 1)))
	assert.Equal(t, color.RGBAModel.Convert(color.White), color.RGBAModel.Convert(img.At(0, 0)))
}

func TestImageSinkScale(t *testing.T) {
	s := NewImageSink(4, 3, "", 2)
	s.Clear(geom.Color{})
	s.DrawPoint(1, 1, geom.RGB(255, 0, 0))

	img := s.Snapshot()
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	red := color.RGBAModel.Convert(color.RGBA{255, 0, 0, 255})
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		assert.Equal(t, red, color.RGBAModel.Convert(img.At(p[0], p[1])), "pixel %v", p)
	}
	assert.Equal(t, color.RGBAModel.Convert(color.RGBA{0, 0, 0, 255}), color.RGBAModel.Convert(img.At(4, 2)))
}

func TestImageSinkPresentError(t *testing.T) {
	s := NewImageSink(2, 2, filepath.Join(t.TempDir(), "missing", "frame.png"), 1)
	err := s.Present()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create snapshot")
}
