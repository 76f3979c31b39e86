package camera

import "sinecloud/internal/geom"

// Projection constants. They tie the field of view to the reference 4:3
// raster and must stay as they are.
const (
	K       = 0.75
	M       = 1.5
	Epsilon = 1e-4
)

// Projector maps camera-space points onto a width x height raster.
type Projector struct {
	Width, Height float32
	Aspect        float32
}

// NewProjector returns a Projector for a w x h raster.
func NewProjector(w, h int) Projector {
	return Projector{
		Width:  float32(w),
		Height: float32(h),
		Aspect: float32(w) / float32(h),
	}
}

// Project maps a camera-space point to screen space. A point exactly on the
// camera plane is pushed to z = Epsilon.
func (pr Projector) Project(p geom.Point3) geom.Point2 {
	x, y, z := p.Pos[0], p.Pos[1], p.Pos[2]
	if z == 0 {
		z = Epsilon
	}
	d := M * z
	return geom.P2(
		pr.Width*(x/pr.Aspect+K*z)/d,
		pr.Height*(d-y)/d,
		p.Color,
	)
}
