package export

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"

	"GeoBoard/internal/overlay"
	"GeoBoard/internal/state"
)

// Document is the JSON form of a saved board: the committed strokes and
// the live text boxes, plus the surface geometry they were made on.
type Document struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background color.NRGBA    `json:"background"`
	Strokes    []state.Stroke `json:"strokes"`
	Boxes      []*overlay.Box `json:"boxes"`
}

// Save writes the document as indented JSON.
func Save(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal board: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write board: %w", err)
	}
	return nil
}

// Load reads a document back.
func Load(r io.Reader) (Document, error) {
	var doc Document
	data, err := io.ReadAll(r)
	if err != nil {
		return doc, fmt.Errorf("read board: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse board: %w", err)
	}
	return doc, nil
}
