package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GeoBoard/internal/geom"
	"GeoBoard/internal/state"
)

func renderSVG(t *testing.T, sc Scene) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, sc))
	return buf.String()
}

func TestSVGDimensionsAreLogical(t *testing.T) {
	sc := scene(nil, nil)
	sc.Scale = 2 // device scale must not leak into the vector artifact
	out := renderSVG(t, sc)
	assert.Contains(t, out, `width="800" height="600"`)
	assert.Contains(t, out, `viewBox="0 0 800 600"`)
}

func TestSVGBackgroundRect(t *testing.T) {
	out := renderSVG(t, scene(nil, nil))
	assert.Contains(t, out, `<rect width="100%" height="100%" fill="#ffffff"/>`)

	sc := scene(nil, nil)
	sc.Background.A = 0
	assert.NotContains(t, renderSVG(t, sc), "<rect")
}

// The emitted path must visit the midpoint-quadratic structure of the
// smoothed sequence, not the raw one: smoothing is applied exactly once.
func TestSVGPathUsesSmoothedSequence(t *testing.T) {
	st := *state.NewStroke(state.ToolPen, black, 4, geom.Pt(0, 0))
	st.Points = append(st.Points, geom.Pt(10, 0), geom.Pt(10, 10))
	// Smoothed: (0,0), (5,0), (10,5). Expected path:
	// M 0 0, L 2.5 0 (first midpoint), Q ctrl=(5,0) to=(7.5,2.5), L 10 5.
	out := renderSVG(t, scene([]state.Stroke{st}, nil))

	assert.Contains(t, out, `M 0.00 0.00 L 2.50 0.00 Q 5.00 0.00 7.50 2.50 L 10.00 5.00`)
	assert.NotContains(t, out, "Q 10.00 0.00", "raw control point must not appear")
}

func TestSVGExcludesEraserStrokes(t *testing.T) {
	pen := *state.NewStroke(state.ToolPen, black, 4, geom.Pt(10, 10))
	pen.Points = append(pen.Points, geom.Pt(50, 50))
	eraser := *state.NewStroke(state.ToolEraser, black, 20, geom.Pt(10, 10))
	eraser.Points = append(eraser.Points, geom.Pt(50, 50))

	out := renderSVG(t, scene([]state.Stroke{pen, eraser}, nil))
	assert.Equal(t, 1, strings.Count(out, "<path"), "only the pen stroke is emitted")
}

func TestSVGStrokeAttributes(t *testing.T) {
	st := *state.NewStroke(state.ToolPen, red, 10, geom.Point{X: 0, Y: 0, Pressure: 1})
	st.Points = append(st.Points, geom.Point{X: 20, Y: 0, Pressure: 1})

	out := renderSVG(t, scene([]state.Stroke{st}, nil))
	assert.Contains(t, out, `stroke="#ff0000"`)
	assert.Contains(t, out, `fill="none"`)
	assert.Contains(t, out, `stroke-linecap="round"`)
	// Pressure 1 throughout: width = 10*(0.3+0.7) = 10.
	assert.Contains(t, out, `stroke-width="10.00"`)
}

func TestAverageWidthDefaultsMissingPressure(t *testing.T) {
	st := *state.NewStroke(state.ToolPen, black, 10, geom.Pt(0, 0))
	st.Points = append(st.Points, geom.Pt(5, 5))
	// No pressure reported: mean effective pressure is the 0.5 default.
	assert.InDelta(t, 6.5, averageWidth(st), 1e-9)
}
