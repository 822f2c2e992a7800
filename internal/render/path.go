// Package render turns stroke point sequences into path segments and
// rasterizes them onto the board's ink layer. The same midpoint-quadratic
// construction feeds the on-screen incremental drawing, the full repaint
// and the vector export, so smoothing and curve shape are defined in
// exactly one place.
package render

import "GeoBoard/internal/geom"

// SegKind discriminates path segments.
type SegKind int

const (
	SegMove SegKind = iota
	SegLine
	SegQuad
)

// Segment is one element of a stroke path. From/To carry the sample
// pressure along with position so the rasterizer can vary the line width
// across the segment. Ctrl is set for SegQuad only.
type Segment struct {
	Kind SegKind
	From geom.Point
	Ctrl geom.Point
	To   geom.Point
}

// buildOpen returns the path for the points seen so far, excluding the
// closing line to the last sample. It is append-only: adding a sample to
// pts appends segments without changing the existing ones, which is what
// lets incremental drawing replay only the new tail.
func buildOpen(pts []geom.Point) []Segment {
	if len(pts) == 0 {
		return nil
	}
	segs := make([]Segment, 0, len(pts))
	segs = append(segs, Segment{Kind: SegMove, From: pts[0], To: pts[0]})
	if len(pts) >= 2 {
		segs = append(segs, Segment{Kind: SegLine, From: pts[0], To: geom.Midpoint(pts[0], pts[1])})
	}
	for i := 1; i+1 < len(pts); i++ {
		segs = append(segs, Segment{
			Kind: SegQuad,
			From: geom.Midpoint(pts[i-1], pts[i]),
			Ctrl: pts[i],
			To:   geom.Midpoint(pts[i], pts[i+1]),
		})
	}
	return segs
}

// closing returns the final line from the last midpoint to the last sample.
func closing(pts []geom.Point) (Segment, bool) {
	n := len(pts)
	if n == 0 {
		return Segment{}, false
	}
	last := pts[n-1]
	from := last
	if n >= 2 {
		from = geom.Midpoint(pts[n-2], last)
	}
	return Segment{Kind: SegLine, From: from, To: last}, true
}

// BuildStrokePath reconstructs the complete path of a stroke from its
// smoothed point sequence: move to the first sample, line to the first
// midpoint, one quadratic through each interior sample to the next
// midpoint, and a closing line to the last sample. A single-point stroke
// degenerates to a dot.
func BuildStrokePath(pts []geom.Point) []Segment {
	segs := buildOpen(pts)
	if c, ok := closing(pts); ok {
		segs = append(segs, c)
	}
	return segs
}

// QuadAt evaluates a quadratic Bezier segment at t in [0,1].
func QuadAt(from, ctrl, to geom.Point, t float64) geom.Point {
	u := 1 - t
	return geom.Point{
		X:        u*u*from.X + 2*u*t*ctrl.X + t*t*to.X,
		Y:        u*u*from.Y + 2*u*t*ctrl.Y + t*t*to.Y,
		Pressure: geom.Lerp(from.Pressure, to.Pressure, t),
	}
}
