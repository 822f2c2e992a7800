package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 10, 0, 0},
		{"end", 0, 10, 1, 10},
		{"middle", 0, 10, 0.5, 5},
		{"negative range", -4, 4, 0.25, -2},
		{"degenerate", 7, 7, 0.9, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Lerp(tt.a, tt.b, tt.t), 1e-9)
		})
	}
}

func TestSmooth(t *testing.T) {
	curr := Point{X: 10, Y: 20, Pressure: 1}

	// First point of a stroke passes through unchanged.
	assert.Equal(t, curr, Smooth(nil, curr))

	prev := Point{X: 0, Y: 0, Pressure: 0.5}
	got := Smooth(&prev, curr)
	assert.InDelta(t, 5, got.X, 1e-9)
	assert.InDelta(t, 10, got.Y, 1e-9)
	assert.InDelta(t, 0.75, got.Pressure, 1e-9)
}

func TestSmoothedAppendOnly(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}

	full := Smoothed(pts)
	require.Len(t, full, len(pts))
	assert.Equal(t, pts[0], full[0])

	// Appending a raw sample must not disturb earlier smoothed samples.
	prefix := Smoothed(pts[:3])
	assert.Equal(t, full[:3], prefix)
}

func TestSpacing(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  float64
	}{
		{"thin stroke floors at half pixel", 1, 0.5},
		{"default pen", 3, 1.05},
		{"fat eraser", 20, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Spacing(tt.width), 1e-9)
		})
	}
}

func TestDensify(t *testing.T) {
	a := Point{X: 0, Y: 0, Pressure: 0}
	b := Point{X: 10, Y: 0, Pressure: 1}

	// Distance 10, spacing 2 -> 5 intermediate points, none equal to the
	// endpoints, evenly spread, pressure interpolated alongside position.
	got := Densify(a, b, 2)
	require.Len(t, got, 5)
	for i, p := range got {
		frac := float64(i+1) / 6
		assert.InDelta(t, 10*frac, p.X, 1e-9)
		assert.InDelta(t, 0, p.Y, 1e-9)
		assert.InDelta(t, frac, p.Pressure, 1e-9)
	}

	// Samples closer than the spacing produce nothing.
	assert.Empty(t, Densify(a, Point{X: 1, Y: 0}, 2))

	// Zero or negative spacing is refused rather than dividing by zero.
	assert.Empty(t, Densify(a, b, 0))
}
