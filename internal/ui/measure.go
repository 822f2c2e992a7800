package ui

import "fyne.io/fyne/v2"

// fyneMeasurer adapts the toolkit's text measurement to the overlay's
// Measurer interface so the core never imports the UI toolkit.
type fyneMeasurer struct{}

func (fyneMeasurer) MeasureText(line string, fontSize float64) (float64, float64) {
	size := fyne.MeasureText(line, float32(fontSize), fyne.TextStyle{})
	return float64(size.Width), float64(size.Height)
}
