package state

import (
	"image/color"

	"GeoBoard/internal/geom"
)

// Store owns the committed stroke history and the redo buffer, plus the one
// stroke currently in flight between Begin and Commit. Every operation is
// synchronous and total: calls whose preconditions do not hold are no-ops,
// never errors.
type Store struct {
	current   *Stroke
	committed []Stroke
	redo      []Stroke
}

func NewStore() *Store {
	return &Store{}
}

// Begin starts a new in-flight stroke with one point and empties the redo
// buffer: redo validity ends the instant a new action occurs. A no-op when
// the tool does not draw or a stroke is already in flight.
func (s *Store) Begin(tool Tool, col color.NRGBA, width float64, p geom.Point) {
	if !tool.Draws() || s.current != nil {
		return
	}
	s.redo = nil
	s.current = NewStroke(tool, col, width, p)
}

// Extend densifies from the in-flight stroke's last sample to p and appends
// all resulting samples plus p itself. A no-op when idle.
func (s *Store) Extend(p geom.Point) {
	if s.current == nil {
		return
	}
	spacing := geom.Spacing(s.current.Width)
	s.current.Points = append(s.current.Points, geom.Densify(s.current.Last(), p, spacing)...)
	s.current.Points = append(s.current.Points, p)
}

// Commit pushes the in-flight stroke to the history and always returns the
// store to idle. Strokes that never collected a point are discarded.
func (s *Store) Commit() {
	if s.current == nil {
		return
	}
	if len(s.current.Points) >= 1 {
		s.committed = append(s.committed, *s.current)
	}
	s.current = nil
}

// Undo moves the newest committed stroke to the redo buffer.
func (s *Store) Undo() {
	n := len(s.committed)
	if n == 0 {
		return
	}
	s.redo = append(s.redo, s.committed[n-1])
	s.committed = s.committed[:n-1]
}

// Redo moves the newest undone stroke back to the history.
func (s *Store) Redo() {
	n := len(s.redo)
	if n == 0 {
		return
	}
	s.committed = append(s.committed, s.redo[n-1])
	s.redo = s.redo[:n-1]
}

// Clear empties history and redo buffer alike.
func (s *Store) Clear() {
	s.committed = nil
	s.redo = nil
}

// Replace swaps the whole committed history, emptying the redo buffer.
// Used when loading a saved board.
func (s *Store) Replace(strokes []Stroke) {
	s.committed = append([]Stroke(nil), strokes...)
	s.redo = nil
	s.current = nil
}

// Drawing reports whether a stroke is in flight.
func (s *Store) Drawing() bool {
	return s.current != nil
}

// Current returns the in-flight stroke, nil when idle.
func (s *Store) Current() *Stroke {
	return s.current
}

// Committed returns a copy of the history in chronological order.
func (s *Store) Committed() []Stroke {
	return append([]Stroke(nil), s.committed...)
}

// Depth returns the number of committed strokes.
func (s *Store) Depth() int {
	return len(s.committed)
}

// RedoDepth returns the number of undone strokes available to Redo.
func (s *Store) RedoDepth() int {
	return len(s.redo)
}
