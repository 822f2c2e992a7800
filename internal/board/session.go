// Package board is the composition root of the drawing core: it routes
// pointer input to the stroke store or the text overlay depending on the
// active tool, drives the render engine after each mutation, and answers
// snapshot queries for the export pipeline. Everything here runs
// synchronously on the event thread; there is no locking because there is
// no second thread of control.
package board

import (
	"image"
	"image/color"
	"io"

	"GeoBoard/internal/export"
	"GeoBoard/internal/geom"
	"GeoBoard/internal/overlay"
	"GeoBoard/internal/render"
	"GeoBoard/internal/state"
)

// Session owns the live state of one board: committed strokes, text boxes,
// the ink layer and the current tool settings. Tool, color and width are
// explicit session fields set by the toolbar, not package globals.
type Session struct {
	store  *state.Store
	texts  *overlay.Manager
	engine *render.Engine
	width  int
	height int
	bg     color.NRGBA

	Tool     state.Tool
	Color    color.NRGBA
	PenWidth float64
	FontSize float64

	// OnChange fires after any mutation that needs a screen refresh.
	OnChange func()
}

// NewSession builds a session for a fixed surface. The measurer is the
// platform's text measurement, injected so the core stays headless.
func NewSession(width, height int, scale float64, bg color.NRGBA, m overlay.Measurer) *Session {
	return &Session{
		store:    state.NewStore(),
		texts:    overlay.NewManager(float64(width), float64(height), m),
		engine:   render.NewEngine(width, height, scale),
		width:    width,
		height:   height,
		bg:       bg,
		Tool:     state.ToolPen,
		Color:    color.NRGBA{A: 255},
		PenWidth: 3,
		FontSize: 20,
	}
}

// Store exposes the undo/redo store, read-mostly, for the toolbar.
func (s *Session) Store() *state.Store { return s.store }

// Texts exposes the overlay manager for the widget layer.
func (s *Session) Texts() *overlay.Manager { return s.texts }

// Ink exposes the rendered ink layer for display.
func (s *Session) Ink() *image.NRGBA { return s.engine.Ink() }

// Size returns the fixed logical surface size.
func (s *Session) Size() (int, int) { return s.width, s.height }

// Background returns the current background color.
func (s *Session) Background() color.NRGBA { return s.bg }

// SetBackground changes the background fill and refreshes the screen; the
// ink layer is untouched since ink and background are separate layers.
func (s *Session) SetBackground(c color.NRGBA) {
	s.bg = c
	s.changed()
}

// PointerDown starts a stroke or places/focuses a text box, depending on
// the active tool.
func (s *Session) PointerDown(x, y, pressure float64) {
	p := geom.Point{X: x, Y: y, Pressure: pressure}
	switch {
	case s.Tool.Draws():
		s.texts.Blur()
		s.store.Begin(s.Tool, s.Color, s.PenWidth, p)
		s.engine.BeginStroke()
		s.engine.DrawIncremental(s.store.Current())
		s.changed()
	case s.Tool == state.ToolText:
		s.texts.Place(s.Tool, x, y, s.FontSize, s.Color)
		s.changed()
	}
}

// PointerMove extends the in-flight stroke and draws only the new
// segments. Safe to call at any input rate; a no-op while idle.
func (s *Session) PointerMove(x, y, pressure float64) {
	if !s.store.Drawing() {
		return
	}
	s.store.Extend(geom.Point{X: x, Y: y, Pressure: pressure})
	s.engine.DrawIncremental(s.store.Current())
	s.changed()
}

// PointerUp commits the in-flight stroke. Also used for cancel/leave.
func (s *Session) PointerUp() {
	if !s.store.Drawing() {
		return
	}
	s.engine.FinishStroke(s.store.Current())
	s.store.Commit()
	s.changed()
}

// Undo removes the newest committed stroke and repaints.
func (s *Session) Undo() {
	s.store.Undo()
	s.repaint()
}

// Redo restores the newest undone stroke and repaints.
func (s *Session) Redo() {
	s.store.Redo()
	s.repaint()
}

// Clear wipes strokes, history and text boxes.
func (s *Session) Clear() {
	s.store.Clear()
	s.texts.ClearAll()
	s.repaint()
}

func (s *Session) repaint() {
	s.engine.Repaint(s.store.Committed())
	s.changed()
}

func (s *Session) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}

// Scene captures the committed state for the export pipeline. Pure query:
// nothing in the session changes.
func (s *Session) Scene() export.Scene {
	return export.Scene{
		Width:      s.width,
		Height:     s.height,
		Scale:      s.engine.Scale(),
		Background: s.bg,
		Strokes:    s.store.Committed(),
		Boxes:      s.texts.Boxes(),
	}
}

// RasterSnapshot composes the current scene into a pixel image. This is
// the synchronous query the analysis collaborator consumes; all network
// timing belongs to the caller.
func (s *Session) RasterSnapshot() (*image.NRGBA, error) {
	return export.Raster(s.Scene())
}

// VectorSnapshot writes the current scene as SVG.
func (s *Session) VectorSnapshot(w io.Writer) error {
	return export.SVG(w, s.Scene())
}

// Save writes the board as a JSON document.
func (s *Session) Save(w io.Writer) error {
	sc := s.Scene()
	return export.Save(w, export.Document{
		Width:      sc.Width,
		Height:     sc.Height,
		Background: sc.Background,
		Strokes:    sc.Strokes,
		Boxes:      sc.Boxes,
	})
}

// Load replaces the board with a saved document: history is swapped, the
// redo buffer empties, text boxes are restored and the surface repainted.
func (s *Session) Load(r io.Reader) error {
	doc, err := export.Load(r)
	if err != nil {
		return err
	}
	s.store.Replace(doc.Strokes)
	s.texts.Restore(doc.Boxes)
	if doc.Background.A > 0 {
		s.bg = doc.Background
	}
	s.repaint()
	return nil
}
