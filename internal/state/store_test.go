package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GeoBoard/internal/geom"
)

var black = color.NRGBA{A: 255}

func drawOne(s *Store, pts ...geom.Point) {
	s.Begin(ToolPen, black, 3, pts[0])
	for _, p := range pts[1:] {
		s.Extend(p)
	}
	s.Commit()
}

func TestBeginRequiresDrawingTool(t *testing.T) {
	s := NewStore()
	s.Begin(ToolText, black, 3, geom.Pt(1, 1))
	assert.False(t, s.Drawing())
	s.Commit()
	assert.Equal(t, 0, s.Depth())
}

func TestExtendDensifies(t *testing.T) {
	s := NewStore()
	s.Begin(ToolPen, black, 3, geom.Pt(0, 0))
	require.True(t, s.Drawing())

	// Width 3 -> spacing 1.05; a 10px jump inserts floor(10/1.05)=9
	// intermediates plus the raw sample itself.
	s.Extend(geom.Pt(10, 0))
	assert.Len(t, s.Current().Points, 1+9+1)

	s.Commit()
	assert.False(t, s.Drawing())
	assert.Equal(t, 1, s.Depth())
}

func TestExtendWhileIdleIsNoop(t *testing.T) {
	s := NewStore()
	s.Extend(geom.Pt(5, 5))
	assert.False(t, s.Drawing())
	assert.Equal(t, 0, s.Depth())
}

func TestUndoRedoConservation(t *testing.T) {
	s := NewStore()
	drawOne(s, geom.Pt(0, 0), geom.Pt(1, 0))
	drawOne(s, geom.Pt(0, 1), geom.Pt(1, 1))
	drawOne(s, geom.Pt(0, 2), geom.Pt(1, 2))

	total := s.Depth() + s.RedoDepth()
	for _, op := range []func(){s.Undo, s.Undo, s.Redo, s.Undo, s.Redo, s.Redo} {
		op()
		assert.Equal(t, total, s.Depth()+s.RedoDepth(), "stroke conservation across undo/redo")
	}
	assert.Equal(t, 3, s.Depth())
}

func TestUndoRedoEmptyAreNoops(t *testing.T) {
	s := NewStore()
	assert.NotPanics(t, func() {
		s.Undo()
		s.Redo()
	})
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, 0, s.RedoDepth())
}

func TestNewStrokeEmptiesRedo(t *testing.T) {
	s := NewStore()
	drawOne(s, geom.Pt(0, 0), geom.Pt(1, 0))
	drawOne(s, geom.Pt(0, 1), geom.Pt(1, 1))
	s.Undo()
	require.Equal(t, 1, s.RedoDepth())

	drawOne(s, geom.Pt(0, 2), geom.Pt(1, 2))
	assert.Equal(t, 0, s.RedoDepth(), "branching history is not supported")
	assert.Equal(t, 2, s.Depth())
}

func TestUndoRedoOrdering(t *testing.T) {
	s := NewStore()
	drawOne(s, geom.Pt(0, 0))
	drawOne(s, geom.Pt(9, 9))
	first := s.Committed()[0].ID
	second := s.Committed()[1].ID

	s.Undo()
	require.Equal(t, []string{first}, ids(s.Committed()))
	s.Redo()
	assert.Equal(t, []string{first, second}, ids(s.Committed()))
}

func ids(strokes []Stroke) []string {
	out := make([]string, len(strokes))
	for i, st := range strokes {
		out[i] = st.ID
	}
	return out
}

func TestClearIsIdempotent(t *testing.T) {
	s := NewStore()
	drawOne(s, geom.Pt(0, 0), geom.Pt(1, 0))
	s.Undo()

	s.Clear()
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, 0, s.RedoDepth())

	s.Clear()
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, 0, s.RedoDepth())
}

func TestCommitWhileIdleIsNoop(t *testing.T) {
	s := NewStore()
	s.Commit()
	assert.Equal(t, 0, s.Depth())
}

func TestReplace(t *testing.T) {
	s := NewStore()
	drawOne(s, geom.Pt(0, 0))
	s.Undo()

	st := *NewStroke(ToolPen, black, 2, geom.Pt(3, 3))
	s.Replace([]Stroke{st})
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, 0, s.RedoDepth())
}
