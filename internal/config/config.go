// Package config holds the startup constants of the renderer.
package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"sinecloud/internal/camera"
	"sinecloud/internal/geom"
	"sinecloud/internal/surface"
)

// Config describes the window, the sampled surface and the camera.
type Config struct {
	Width, Height int
	Title         string

	Surface    surface.Domain
	Camera     camera.Camera
	Background geom.Color

	// SnapshotPath and SnapshotScale are used by the headless renderer.
	SnapshotPath  string
	SnapshotScale int
}

// Default returns the reference setup: a 400x300 window looking down at the
// surface from just outside its (-x, -z) corner.
func Default() Config {
	const (
		sizeX = 2
		sizeY = 2
		sizeZ = 2
	)
	return Config{
		Width:  400,
		Height: 300,
		Title:  "figure 1",
		Surface: surface.Domain{
			Extent: mgl32.Vec3{sizeX, sizeY, sizeZ},
			Step:   0.01,
		},
		Camera: camera.Camera{
			Position: mgl32.Vec3{-sizeX - 0.3, 2, -sizeZ - 0.3},
			Angle:    mgl32.Vec3{-0.8, 3.14/4 + 0.1, 0},
		},
		Background:    geom.RGB(255, 255, 255),
		SnapshotPath:  "sinecloud.png",
		SnapshotScale: 2,
	}
}

// Validate reports settings the pipeline cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height))
	}
	if err := c.Surface.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.SnapshotScale < 1 {
		errs = append(errs, fmt.Errorf("invalid snapshot scale %d", c.SnapshotScale))
	}
	return errors.Join(errs...)
}
