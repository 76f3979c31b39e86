// Package surface samples the function y = sin(x)·sin(z) on a regular grid.
package surface

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"sinecloud/internal/geom"
)

// Domain is the sampled region. Extent holds the half-size of each axis;
// the y extent is only used to colour the points.
type Domain struct {
	Extent mgl32.Vec3
	Step   float32
}

// Validate reports domains that cannot be sampled: a step that is not
// positive, a negative extent, or a step too small to move a float32
// coordinate at the edge of the x or z range.
func (d Domain) Validate() error {
	var errs []error
	if !(d.Step > 0) {
		errs = append(errs, fmt.Errorf("invalid surface step %v", d.Step))
	}
	for i, e := range d.Extent {
		if e < 0 {
			errs = append(errs, fmt.Errorf("negative extent %v on axis %d", e, i))
		}
	}
	if d.Step > 0 {
		for _, i := range []int{0, 2} {
			if e := d.Extent[i]; e+d.Step == e {
				errs = append(errs, fmt.Errorf("step %v lost next to extent %v on axis %d", d.Step, e, i))
			}
		}
	}
	return errors.Join(errs...)
}

// Count returns the number of points Generate produces for d. It is zero
// for a domain that fails Validate.
func Count(d Domain) int {
	if d.Validate() != nil {
		return 0
	}
	return steps(d.Extent[0], d.Step) * steps(d.Extent[2], d.Step)
}

func steps(extent, step float32) int {
	n := 0
	for v := -extent; v <= extent; v += step {
		n++
	}
	return n
}

// Generate returns the grid in row-major order, x outer and z inner.
//
// Coordinates are accumulated by repeated addition of Step, so the last
// row or column may sit slightly off the boundary.
func Generate(d Domain) []geom.Point3 {
	n := Count(d)
	if n == 0 {
		return nil
	}
	sx, sy, sz := d.Extent[0], d.Extent[1], d.Extent[2]

	fig := make([]geom.Point3, 0, n)
	for x := -sx; x <= sx; x += d.Step {
		for z := -sz; z <= sz; z += d.Step {
			y := math32.Sin(x) * math32.Sin(z)
			fig = append(fig, geom.P3(x, y, z, geom.RGB(
				channel(x, sx),
				channel(y, sy),
				channel(z, sz),
			)))
		}
	}
	return fig
}

// channel maps v from [-extent, extent] onto [0, 255].
func channel(v, extent float32) float32 {
	if extent == 0 {
		return 0
	}
	return (v + extent) / (2 * extent) * 255
}
