package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"GeoBoard/internal/geom"
	"GeoBoard/internal/render"
	"GeoBoard/internal/state"
)

// PDF writes a printable composite of the scene onto one A4 landscape
// page, scaled to fit inside the page margins. Like the vector export it
// reconstructs pen strokes as curves; text boxes are placed as text so the
// page stays selectable.
func PDF(w io.Writer, sc Scene) error {
	p := buildPDF(sc)
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// SavePDF writes the PDF straight to a file.
func SavePDF(path string, sc Scene) error {
	if err := buildPDF(sc).OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

func buildPDF(sc Scene) *gofpdf.Fpdf {
	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()

	pageW, pageH := p.GetPageSize()
	left, top, right, bottom := p.GetMargins()
	availW := pageW - left - right
	availH := pageH - top - bottom

	// One uniform pixel-to-millimeter factor keeps the aspect ratio.
	s := availW / float64(sc.Width)
	if hs := availH / float64(sc.Height); hs < s {
		s = hs
	}
	tx := func(v float64) float64 { return left + v*s }
	ty := func(v float64) float64 { return top + v*s }

	if sc.Background.A > 0 {
		p.SetFillColor(int(sc.Background.R), int(sc.Background.G), int(sc.Background.B))
		p.Rect(left, top, float64(sc.Width)*s, float64(sc.Height)*s, "F")
	}

	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	for _, st := range sc.Strokes {
		if st.Tool != state.ToolPen {
			continue
		}
		segs := render.BuildStrokePath(geom.Smoothed(st.Points))
		if len(segs) == 0 {
			continue
		}
		p.SetDrawColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
		p.SetLineWidth(averageWidth(st) * s)
		for _, seg := range segs {
			switch seg.Kind {
			case render.SegMove:
				p.MoveTo(tx(seg.To.X), ty(seg.To.Y))
			case render.SegLine:
				p.LineTo(tx(seg.To.X), ty(seg.To.Y))
			case render.SegQuad:
				p.CurveTo(tx(seg.Ctrl.X), ty(seg.Ctrl.Y), tx(seg.To.X), ty(seg.To.Y))
			}
		}
		p.DrawPath("D")
	}

	p.SetFont("Helvetica", "", 12)
	for _, b := range sc.Boxes {
		size := b.FontSize * s
		p.SetFontUnitSize(size)
		p.SetTextColor(int(b.Color.R), int(b.Color.G), int(b.Color.B))
		for i, line := range b.Lines() {
			baseline := ty(b.Y) + float64(i)*size*1.2 + size*0.8
			p.Text(tx(b.X), baseline, line)
		}
	}
	return p
}
