// Package geom holds the point types shared by the renderer pipeline.
//
// A point is a position and a colour kept in separate fields so geometric
// operations never touch the colour.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Color is an RGB colour with channels nominally in [0,255].
type Color struct {
	R, G, B float32
}

// RGB builds a Color.
func RGB(r, g, b float32) Color { return Color{R: r, G: g, B: b} }

// Point3 is a coloured sample in 3D space.
type Point3 struct {
	Pos   mgl32.Vec3
	Color Color
}

// P3 builds a Point3 from coordinates and a colour.
func P3(x, y, z float32, c Color) Point3 {
	return Point3{Pos: mgl32.Vec3{x, y, z}, Color: c}
}

// X returns the x coordinate.
func (p Point3) X() float32 { return p.Pos[0] }

// Y returns the y coordinate.
func (p Point3) Y() float32 { return p.Pos[1] }

// Z returns the z coordinate; in camera space, the depth.
func (p Point3) Z() float32 { return p.Pos[2] }

// Sub translates the point by -v, keeping its colour.
func (p Point3) Sub(v mgl32.Vec3) Point3 {
	return Point3{Pos: p.Pos.Sub(v), Color: p.Color}
}

// Distance returns the euclidean distance between the point and v.
func (p Point3) Distance(v mgl32.Vec3) float32 {
	return p.Pos.Sub(v).Len()
}

// Point2 is a coloured sample in screen space.
type Point2 struct {
	Pos   mgl32.Vec2
	Color Color
}

// P2 builds a Point2.
func P2(x, y float32, c Color) Point2 {
	return Point2{Pos: mgl32.Vec2{x, y}, Color: c}
}

// X returns the screen x coordinate.
func (p Point2) X() float32 { return p.Pos[0] }

// Y returns the screen y coordinate, growing downwards.
func (p Point2) Y() float32 { return p.Pos[1] }

// Pixel truncates the screen position toward zero.
func (p Point2) Pixel() (x, y int) {
	return int(p.Pos[0]), int(p.Pos[1])
}
