// Package state holds the committed drawing state: the stroke model and
// the undo/redo history store.
package state

import (
	"image/color"
	"time"

	"github.com/google/uuid"

	"GeoBoard/internal/geom"
)

// Tool selects what pointer input does on the board.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
	ToolText
)

// Draws reports whether the tool produces strokes.
func (t Tool) Draws() bool {
	return t == ToolPen || t == ToolEraser
}

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	case ToolText:
		return "text"
	}
	return "unknown"
}

// Stroke is one continuous pen or eraser gesture. Points are appended only
// while the stroke is in flight; once committed to the Store it is never
// mutated again.
type Stroke struct {
	ID     string       `json:"id"`
	Tool   Tool         `json:"tool"`
	Color  color.NRGBA  `json:"color"`
	Width  float64      `json:"width"`
	Points []geom.Point `json:"points"`
	Time   time.Time    `json:"time"`
}

// NewStroke starts a stroke with its first sample.
func NewStroke(tool Tool, col color.NRGBA, width float64, first geom.Point) *Stroke {
	return &Stroke{
		ID:     uuid.NewString(),
		Tool:   tool,
		Color:  col,
		Width:  width,
		Points: []geom.Point{first},
		Time:   time.Now(),
	}
}

// Last returns the most recently appended sample.
func (s *Stroke) Last() geom.Point {
	return s.Points[len(s.Points)-1]
}
