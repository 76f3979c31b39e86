// Package camera converts world-space points into camera space and projects
// them onto the screen.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"sinecloud/internal/geom"
)

// Camera is a pinhole camera.
//
// Angle.Y turns about the vertical axis and Angle.X about the horizontal
// axis. Angle.Z is not used.
type Camera struct {
	Position mgl32.Vec3
	Angle    mgl32.Vec3
}

// ToCamera moves p into camera space. The world is turned opposite to the
// camera orientation, vertical axis first, then shifted by -Position.
func (c Camera) ToCamera(p geom.Point3) geom.Point3 {
	p = RotateY(c.Position, -c.Angle[1], p)
	p = RotateX(c.Position, -c.Angle[0], p)
	return p.Sub(c.Position)
}

// Depth returns the camera-space z of p.
func (c Camera) Depth(p geom.Point3) float32 {
	return c.ToCamera(p).Z()
}

// RotateY rotates p about center in the (z,x) plane, around the vertical axis.
func RotateY(center mgl32.Vec3, angle float32, p geom.Point3) geom.Point3 {
	sn, cs := math32.Sincos(angle)

	z := p.Pos[2] - center[2]
	x := p.Pos[0] - center[0]

	p.Pos[2] = z*cs - x*sn + center[2]
	p.Pos[0] = z*sn + x*cs + center[0]
	return p
}

// RotateX rotates p about center in the (z,y) plane, around the horizontal axis.
func RotateX(center mgl32.Vec3, angle float32, p geom.Point3) geom.Point3 {
	sn, cs := math32.Sincos(angle)

	z := p.Pos[2] - center[2]
	y := p.Pos[1] - center[1]

	p.Pos[2] = z*cs - y*sn + center[2]
	p.Pos[1] = z*sn + y*cs + center[1]
	return p
}
