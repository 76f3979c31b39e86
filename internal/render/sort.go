package render

import (
	"cmp"
	"slices"

	"sinecloud/internal/camera"
	"sinecloud/internal/geom"
)

// depthKey is the sort key of one figure point: its camera-space depth and
// its position in the figure.
type depthKey struct {
	depth float32
	index int
}

// farthestFirst orders keys by decreasing depth, then by decreasing index,
// so of two points at the same depth the earlier one is drawn last.
func farthestFirst(a, b depthKey) int {
	if c := cmp.Compare(b.depth, a.depth); c != 0 {
		return c
	}
	return cmp.Compare(b.index, a.index)
}

// DepthSort returns a copy of fig ordered far to near as seen by cam.
// Points at equal depth come out in reverse figure order.
func DepthSort(fig []geom.Point3, cam camera.Camera) []geom.Point3 {
	var s sorter
	return s.sort(fig, cam)
}

// sorter keeps the key and output buffers between frames. Each point's
// depth is computed once per sort, never inside the comparator.
type sorter struct {
	keys []depthKey
	out  []geom.Point3
}

// sort returns fig ordered far to near. The result is owned by s and is
// overwritten by the next call.
func (s *sorter) sort(fig []geom.Point3, cam camera.Camera) []geom.Point3 {
	s.keys = slices.Grow(s.keys[:0], len(fig))
	for i, p := range fig {
		s.keys = append(s.keys, depthKey{depth: cam.Depth(p), index: i})
	}
	slices.SortFunc(s.keys, farthestFirst)

	s.out = slices.Grow(s.out[:0], len(fig))
	for _, k := range s.keys {
		s.out = append(s.out, fig[k.index])
	}
	return s.out
}
