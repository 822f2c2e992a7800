// Package export composes the board's committed state into its external
// artifacts: a raster PNG snapshot, a vector SVG reconstruction, a
// printable PDF and a JSON document for save/load. Export only reads the
// scene it is handed; it never mutates board state.
package export

import (
	"image/color"

	"GeoBoard/internal/overlay"
	"GeoBoard/internal/state"
)

// Scene is a read-only snapshot of everything the export pipeline needs.
// Strokes are in chronological order; Boxes are in ascending z-order (as
// returned by the overlay manager), which is the order they are drawn in.
type Scene struct {
	Width      int
	Height     int
	Scale      float64
	Background color.NRGBA
	Strokes    []state.Stroke
	Boxes      []*overlay.Box
}
