package render

import (
	"image"
	"image/color"
	"math"

	"GeoBoard/internal/geom"
	"GeoBoard/internal/state"
)

// flattenStep is the maximum distance, in device pixels, between two
// consecutive stamps along a segment.
const flattenStep = 0.75

// Engine rasterizes strokes onto an ink layer sized to the drawing surface
// times the device-pixel scale. The layer holds ink only; the background is
// composited underneath by the widget and by the export pipeline, which is
// what lets the eraser remove ink without ever painting the background.
type Engine struct {
	w, h  int
	scale float64
	ink   *image.NRGBA
	drawn int
}

// NewEngine allocates an ink layer for a surface of w by h logical pixels.
func NewEngine(w, h int, scale float64) *Engine {
	if scale <= 0 {
		scale = 1
	}
	pw := int(float64(w)*scale + 0.5)
	ph := int(float64(h)*scale + 0.5)
	return &Engine{
		w:     w,
		h:     h,
		scale: scale,
		ink:   image.NewNRGBA(image.Rect(0, 0, pw, ph)),
	}
}

// Ink exposes the ink layer for display and compositing. Callers must not
// mutate it.
func (e *Engine) Ink() *image.NRGBA { return e.ink }

// LogicalSize returns the surface size in logical pixels.
func (e *Engine) LogicalSize() (int, int) { return e.w, e.h }

// Scale returns the device-pixel scale factor.
func (e *Engine) Scale() float64 { return e.scale }

// BeginStroke resets incremental tracking for a new in-flight stroke.
func (e *Engine) BeginStroke() { e.drawn = 0 }

// DrawIncremental stamps only the segments of the in-flight stroke that
// have not been drawn yet. Because the smoothed sequence and the open path
// are both append-only, replaying the tail reproduces, stamp for stamp,
// what a full draw of the same points would have produced.
func (e *Engine) DrawIncremental(st *state.Stroke) {
	if st == nil {
		return
	}
	segs := buildOpen(geom.Smoothed(st.Points))
	for _, s := range segs[e.drawn:] {
		e.stampSegment(s, st)
	}
	e.drawn = len(segs)
}

// FinishStroke draws the closing segment of the in-flight stroke and ends
// incremental tracking. Called on commit.
func (e *Engine) FinishStroke(st *state.Stroke) {
	if st == nil {
		e.drawn = 0
		return
	}
	e.DrawIncremental(st)
	if c, ok := closing(geom.Smoothed(st.Points)); ok {
		e.stampSegment(c, st)
	}
	e.drawn = 0
}

// DrawStroke draws a completed stroke in one pass.
func (e *Engine) DrawStroke(st state.Stroke) {
	for _, s := range BuildStrokePath(geom.Smoothed(st.Points)) {
		e.stampSegment(s, &st)
	}
}

// Repaint clears the ink layer and replays every committed stroke in
// chronological order, oldest first, so pen and eraser interact the same
// way they did live. Triggered by undo, redo, clear and load.
func (e *Engine) Repaint(strokes []state.Stroke) {
	for i := range e.ink.Pix {
		e.ink.Pix[i] = 0
	}
	e.drawn = 0
	for _, st := range strokes {
		e.DrawStroke(st)
	}
}

func (e *Engine) stampSegment(seg Segment, st *state.Stroke) {
	if seg.Kind == SegMove {
		return
	}
	erase := st.Tool == state.ToolEraser

	var length float64
	switch seg.Kind {
	case SegLine:
		length = geom.Dist(seg.From, seg.To)
	case SegQuad:
		// Control-polygon length over-estimates slightly, which only
		// tightens the stamp spacing.
		length = geom.Dist(seg.From, seg.Ctrl) + geom.Dist(seg.Ctrl, seg.To)
	}
	steps := int(math.Ceil(length * e.scale / flattenStep))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		var p geom.Point
		if seg.Kind == SegQuad {
			p = QuadAt(seg.From, seg.Ctrl, seg.To, t)
		} else {
			p = geom.LerpPoint(seg.From, seg.To, t)
		}
		pressure := geom.Lerp(seg.From.Pressure, seg.To.Pressure, t)
		r := WidthAt(st.Width, pressure) / 2 * e.scale
		e.stampDisc(p.X*e.scale, p.Y*e.scale, r, st.Color, erase)
	}
}

// stampDisc blends one round stamp into the ink layer. Coverage falls off
// linearly over the outermost pixel so edges stay soft without a full
// scanline rasterizer, and the math is plain float64 so output is
// reproducible byte for byte.
func (e *Engine) stampDisc(cx, cy, r float64, col color.NRGBA, erase bool) {
	b := e.ink.Rect
	x0 := clampInt(int(math.Floor(cx-r-1)), b.Min.X, b.Max.X)
	x1 := clampInt(int(math.Ceil(cx+r+1)), b.Min.X, b.Max.X)
	y0 := clampInt(int(math.Floor(cy-r-1)), b.Min.Y, b.Max.Y)
	y1 := clampInt(int(math.Ceil(cy+r+1)), b.Min.Y, b.Max.Y)

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			cov := r + 0.5 - d
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			i := e.ink.PixOffset(px, py)
			if erase {
				// Destination-out: scale down stored alpha, leave color.
				a := float64(e.ink.Pix[i+3])
				e.ink.Pix[i+3] = uint8(a*(1-cov) + 0.5)
				continue
			}
			blendOver(e.ink.Pix[i:i+4:i+4], col, cov)
		}
	}
}

// blendOver source-over composites col at the given coverage into one
// non-premultiplied pixel.
func blendOver(pix []uint8, col color.NRGBA, cov float64) {
	sa := cov * float64(col.A) / 255
	if sa <= 0 {
		return
	}
	da := float64(pix[3]) / 255
	outA := sa + da*(1-sa)
	if outA <= 0 {
		pix[0], pix[1], pix[2], pix[3] = 0, 0, 0, 0
		return
	}
	src := [3]float64{float64(col.R), float64(col.G), float64(col.B)}
	for c := 0; c < 3; c++ {
		out := (src[c]*sa + float64(pix[c])*da*(1-sa)) / outA
		pix[c] = uint8(out + 0.5)
	}
	pix[3] = uint8(outA*255 + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
