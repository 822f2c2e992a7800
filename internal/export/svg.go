package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"GeoBoard/internal/geom"
	"GeoBoard/internal/render"
	"GeoBoard/internal/state"
)

// SVG writes a resolution-independent reconstruction of the scene: an
// optional full-surface background rectangle followed by one stroke-only
// path per committed pen stroke, in draw order. Paths are rebuilt with the
// same midpoint-quadratic construction the renderer uses, over the
// already-smoothed point sequence, so smoothing is applied exactly once.
// Dimensions are the surface's logical size, not the device-pixel buffer.
//
// Eraser strokes and text boxes are not emitted; the vector format carries
// pen geometry only.
func SVG(w io.Writer, sc Scene) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		sc.Width, sc.Height, sc.Width, sc.Height)
	if sc.Background.A > 0 {
		fmt.Fprintf(&sb, "  <rect width=\"100%%\" height=\"100%%\" fill=%q/>\n", hexColor(sc.Background))
	}
	for _, st := range sc.Strokes {
		if st.Tool != state.ToolPen {
			continue
		}
		segs := render.BuildStrokePath(geom.Smoothed(st.Points))
		if len(segs) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  <path d=%q fill=\"none\" stroke=%q stroke-width=\"%.2f\" stroke-linecap=\"round\" stroke-linejoin=\"round\"/>\n",
			pathData(segs), hexColor(st.Color), averageWidth(st))
	}
	sb.WriteString("</svg>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// pathData serializes segments into an SVG path d attribute.
func pathData(segs []render.Segment) string {
	var sb strings.Builder
	for i, s := range segs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s.Kind {
		case render.SegMove:
			fmt.Fprintf(&sb, "M %.2f %.2f", s.To.X, s.To.Y)
		case render.SegLine:
			fmt.Fprintf(&sb, "L %.2f %.2f", s.To.X, s.To.Y)
		case render.SegQuad:
			fmt.Fprintf(&sb, "Q %.2f %.2f %.2f %.2f", s.Ctrl.X, s.Ctrl.Y, s.To.X, s.To.Y)
		}
	}
	return sb.String()
}

// averageWidth collapses a pressure-varying stroke to the single width an
// SVG path can carry: the width at the stroke's mean effective pressure.
func averageWidth(st state.Stroke) float64 {
	if len(st.Points) == 0 {
		return render.WidthAt(st.Width, 0)
	}
	var sum float64
	for _, p := range st.Points {
		pr := p.Pressure
		if pr <= 0 {
			pr = render.DefaultPressure
		}
		sum += pr
	}
	return render.WidthAt(st.Width, sum/float64(len(st.Points)))
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
