// Package render turns a figure into an ordered list of screen points and
// drives the frame loop that draws them.
//
// A frame is: depth sort, camera transform, near-plane cull, projection.
// Points come out far to near so that drawing them in order lets nearer
// points overwrite farther ones.
package render

import (
	"sinecloud/internal/camera"
	"sinecloud/internal/geom"
)

// Renderer is a reusable frame pipeline.
//
// Create it once and reuse it; slices it returns are only valid until the
// next call.
type Renderer struct {
	Camera    camera.Camera
	Projector camera.Projector

	sorter sorter
	out    []geom.Point2
}

// NewRenderer returns a Renderer for a w x h raster viewed through cam.
func NewRenderer(cam camera.Camera, w, h int) *Renderer {
	return &Renderer{
		Camera:    cam,
		Projector: camera.NewProjector(w, h),
	}
}

// Frame returns the visible points of fig in screen space, far to near.
func (r *Renderer) Frame(fig []geom.Point3) []geom.Point2 {
	sorted := r.sorter.sort(fig, r.Camera)

	r.out = r.out[:0]
	for _, p := range sorted {
		cp, ok := r.Visible(p)
		if !ok {
			continue
		}
		r.out = append(r.out, r.Projector.Project(cp))
	}
	return r.out
}

// Visible returns p in camera space and whether it lies in front of the
// camera plane.
func (r *Renderer) Visible(p geom.Point3) (geom.Point3, bool) {
	cp := r.Camera.ToCamera(p)
	return cp, cp.Z() > 0
}
