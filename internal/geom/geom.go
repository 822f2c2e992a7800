// Package geom holds the pure point math the board is built on:
// interpolation, two-point moving-average smoothing and distance-based
// densification of raw input samples.
package geom

import "math"

// Point is a single input sample on the drawing surface. Pressure is in
// [0,1]; 0 means the device reported none.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Pressure float64 `json:"pressure"`
}

// Pt is a convenience constructor for a point without pressure.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp interpolates linearly between a and b. t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint interpolates position and pressure between two samples.
func LerpPoint(a, b Point, t float64) Point {
	return Point{
		X:        Lerp(a.X, b.X, t),
		Y:        Lerp(a.Y, b.Y, t),
		Pressure: Lerp(a.Pressure, b.Pressure, t),
	}
}

// Midpoint returns the componentwise midpoint of two samples.
func Midpoint(a, b Point) Point {
	return LerpPoint(a, b, 0.5)
}

// Dist returns the Euclidean distance between two samples.
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Smooth applies a one-step moving average: the first sample of a stroke
// passes through unchanged, every later sample is replaced by the midpoint
// of itself and its predecessor. The result trails the raw input by half a
// sample, which rounds off corners.
func Smooth(prev *Point, curr Point) Point {
	if prev == nil {
		return curr
	}
	return Midpoint(*prev, curr)
}

// Smoothed applies Smooth across a whole point sequence. Element i of the
// result depends only on raw elements i-1 and i, so appending a raw sample
// appends exactly one smoothed sample.
func Smoothed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		if i == 0 {
			out[i] = p
			continue
		}
		out[i] = Midpoint(pts[i-1], p)
	}
	return out
}

// Spacing derives the densification spacing from a stroke width. The floor
// of 0.5 keeps very thin strokes from exploding into thousands of points.
func Spacing(width float64) float64 {
	s := width * 0.35
	if s < 0.5 {
		s = 0.5
	}
	return s
}

// Densify returns floor(dist/spacing) evenly interpolated points strictly
// between prev and raw, so that fast pointer motion at low sampling rates
// does not leave visible gaps. The raw sample itself is not included.
func Densify(prev, raw Point, spacing float64) []Point {
	if spacing <= 0 {
		return nil
	}
	n := int(math.Floor(Dist(prev, raw) / spacing))
	if n <= 0 {
		return nil
	}
	pts := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		pts = append(pts, LerpPoint(prev, raw, float64(i)/float64(n+1)))
	}
	return pts
}
