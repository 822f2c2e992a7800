// Package overlay manages the text annotation regions that float above the
// drawing surface: placement, measured auto-sizing with a hard size
// envelope, focus and stacking order. Boxes are never rasterized here; the
// export pipeline reads them back when it composes a snapshot.
package overlay

import (
	"image/color"
	"strings"

	"github.com/google/uuid"

	"GeoBoard/internal/state"
)

const (
	// MinBoxWidth and MinBoxHeight are the smallest footprint a box may
	// occupy; placement is rejected where this footprint plus EdgeMargin
	// cannot fit inside the surface.
	MinBoxWidth  = 80
	MinBoxHeight = 32

	// EdgeMargin keeps boxes off the right and bottom surface edges.
	EdgeMargin = 10

	// LineSpacing is the line height multiplier applied to the font size.
	LineSpacing = 1.2
)

// Measurer reports the rendered footprint of a single text line at a font
// size. The UI layer plugs in the toolkit's text measurement; tests use a
// fixed-advance stand-in.
type Measurer interface {
	MeasureText(line string, fontSize float64) (w, h float64)
}

// Box is one positioned, focusable text region. MaxW/MaxH are fixed at
// placement from the anchor's distance to the surface edges and never
// change afterwards.
type Box struct {
	ID        string      `json:"id"`
	X         float64     `json:"x"`
	Y         float64     `json:"y"`
	MaxW      float64     `json:"maxW"`
	MaxH      float64     `json:"maxH"`
	W         float64     `json:"w"`
	H         float64     `json:"h"`
	Content   string      `json:"content"`
	LastValid string      `json:"lastValid"`
	FontSize  float64     `json:"fontSize"`
	Color     color.NRGBA `json:"color"`
	Z         int         `json:"z"`

	removed bool
}

// Removed reports whether the box has been detached; edits on a removed box
// are no-ops.
func (b *Box) Removed() bool { return b.removed }

// Contains reports whether the point lies inside the box's rendered bounds.
func (b *Box) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Lines splits the content into rendered lines.
func (b *Box) Lines() []string {
	return strings.Split(b.Content, "\n")
}

// Manager owns the box collection for one fixed-size surface.
type Manager struct {
	surfW, surfH float64
	measure      Measurer
	boxes        []*Box
	focused      *Box
	nextZ        int

	// OnReject is called when an edit is refused because it would exceed
	// the box's size envelope; the UI turns it into a warning signal.
	OnReject func(*Box)
}

func NewManager(surfW, surfH float64, m Measurer) *Manager {
	return &Manager{surfW: surfW, surfH: surfH, measure: m}
}

// HitTest returns the box with the greatest Z whose bounds contain the
// point, or nil.
func (m *Manager) HitTest(x, y float64) *Box {
	var hit *Box
	for _, b := range m.boxes {
		if b.Contains(x, y) && (hit == nil || b.Z > hit.Z) {
			hit = b
		}
	}
	return hit
}

// Place creates a new box anchored at the point and focuses it. It is a
// no-op returning nil when the tool is not the text tool or the minimum
// footprint plus margin does not fit at the anchor; when the point hits an
// existing box that box is focused and returned instead.
func (m *Manager) Place(tool state.Tool, x, y, fontSize float64, col color.NRGBA) *Box {
	if tool != state.ToolText {
		return nil
	}
	if hit := m.HitTest(x, y); hit != nil {
		m.Focus(hit)
		return hit
	}
	if x < 0 || y < 0 ||
		x > m.surfW-EdgeMargin-MinBoxWidth ||
		y > m.surfH-EdgeMargin-MinBoxHeight {
		// Too close to the edge to fit: deliberate no-op, no warning.
		return nil
	}
	b := &Box{
		ID:       uuid.NewString(),
		X:        x,
		Y:        y,
		MaxW:     m.surfW - EdgeMargin - x,
		MaxH:     m.surfH - EdgeMargin - y,
		W:        MinBoxWidth,
		H:        MinBoxHeight,
		FontSize: fontSize,
		Color:    col,
	}
	m.boxes = append(m.boxes, b)
	m.Focus(b)
	return b
}

// autoSize measures content against the box's font and applies the size
// envelope, reporting whether either dimension had to be clamped to its
// maximum.
func (m *Manager) autoSize(b *Box, content string) (clampedW, clampedH bool) {
	var desiredW float64
	lines := strings.Split(content, "\n")
	for _, ln := range lines {
		w, _ := m.measure.MeasureText(ln, b.FontSize)
		if w > desiredW {
			desiredW = w
		}
	}
	desiredH := float64(len(lines)) * b.FontSize * LineSpacing

	w := desiredW
	if w < MinBoxWidth {
		w = MinBoxWidth
	}
	if w > b.MaxW {
		w = b.MaxW
		clampedW = true
	}
	h := desiredH
	if h < MinBoxHeight {
		h = MinBoxHeight
	}
	if h > b.MaxH {
		h = b.MaxH
		clampedH = true
	}
	b.W, b.H = w, h
	return clampedW, clampedH
}

// Edit proposes new content for a box. Content that fits the envelope is
// committed and becomes the revert point; content that would clamp either
// dimension is rejected, the box reverts to its last valid content and the
// rejection callback fires. Emptying the content removes the box. Returns
// whether the proposal was accepted.
func (m *Manager) Edit(b *Box, proposed string) bool {
	if b == nil || b.removed {
		return false
	}
	if proposed == "" {
		m.Remove(b)
		return true
	}
	clampedW, clampedH := m.autoSize(b, proposed)
	if clampedW || clampedH {
		b.Content = b.LastValid
		m.autoSize(b, b.LastValid)
		if m.OnReject != nil {
			m.OnReject(b)
		}
		return false
	}
	b.Content = proposed
	b.LastValid = proposed
	return true
}

// Focus gives the box input focus and raises it above all current boxes.
func (m *Manager) Focus(b *Box) {
	if b == nil || b.removed {
		return
	}
	m.focused = b
	m.nextZ++
	b.Z = m.nextZ
}

// Blur drops focus without removing anything.
func (m *Manager) Blur() { m.focused = nil }

// Focused returns the box holding input focus, nil if none.
func (m *Manager) Focused() *Box { return m.focused }

// Remove detaches a box. Further edits on it are no-ops.
func (m *Manager) Remove(b *Box) {
	if b == nil || b.removed {
		return
	}
	b.removed = true
	for i, other := range m.boxes {
		if other == b {
			m.boxes = append(m.boxes[:i], m.boxes[i+1:]...)
			break
		}
	}
	if m.focused == b {
		m.focused = nil
	}
}

// ClearAll removes every box. Used by the global clear action.
func (m *Manager) ClearAll() {
	for _, b := range m.boxes {
		b.removed = true
	}
	m.boxes = nil
	m.focused = nil
}

// Boxes returns the live boxes in ascending Z order, which is also the
// order export draws them in.
func (m *Manager) Boxes() []*Box {
	out := append([]*Box(nil), m.boxes...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Z > out[j].Z; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Len returns the number of live boxes.
func (m *Manager) Len() int { return len(m.boxes) }

// Restore replaces the collection from a saved document and resumes the Z
// counter above the highest restored box.
func (m *Manager) Restore(boxes []*Box) {
	m.ClearAll()
	for _, b := range boxes {
		if b == nil || b.Content == "" {
			continue
		}
		nb := *b
		nb.removed = false
		if nb.LastValid == "" {
			nb.LastValid = nb.Content
		}
		m.boxes = append(m.boxes, &nb)
		if nb.Z > m.nextZ {
			m.nextZ = nb.Z
		}
		m.autoSize(&nb, nb.Content)
	}
}
