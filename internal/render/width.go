package render

// DefaultPressure substitutes for devices that report no pressure.
const DefaultPressure = 0.5

// WidthAt returns the rendered line width for a stroke of the given base
// width at a sample with the given pressure.
func WidthAt(strokeWidth, pressure float64) float64 {
	if pressure <= 0 {
		pressure = DefaultPressure
	}
	w := strokeWidth * (0.3 + 0.7*pressure)
	if w < 0.5 {
		w = 0.5
	}
	return w
}
