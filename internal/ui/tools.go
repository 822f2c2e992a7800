package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"GeoBoard/internal/board"
	"GeoBoard/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// ToolbarActions carries the callbacks the app shell wires behind the
// toolbar's file buttons.
type ToolbarActions struct {
	ExportPNG func()
	ExportSVG func()
	ExportPDF func()
	Save      func()
	Load      func()
}

// NewToolbar builds the main toolbar: tool selection, color palette,
// stroke width, history actions and export buttons.
func NewToolbar(session *board.Session, eraserWidth float64, actions ToolbarActions) fyne.CanvasObject {
	// Pen keeps its own width and color across eraser use.
	var penColor = session.Color
	var penWidth = session.PenWidth

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			session.Tool = state.ToolPen
			session.Color = penColor
			session.PenWidth = penWidth
		}), // Pen
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			session.Tool = state.ToolEraser
			session.PenWidth = eraserWidth
		}), // Eraser
		widget.NewToolbarAction(theme.DocumentIcon(), func() {
			session.Tool = state.ToolText
		}), // Text
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.NavigateBackIcon(), session.Undo),
		widget.NewToolbarAction(theme.NavigateNextIcon(), session.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), session.Clear),
	)

	onColorTapped := func(c color.NRGBA) {
		penColor = c
		session.Color = c
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.NRGBA{A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{G: 200, A: 255}, onColorTapped),
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),
	)

	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(session.PenWidth)
	strokeSlider.OnChanged = func(val float64) {
		if session.Tool == state.ToolEraser {
			eraserWidth = val
		} else {
			penWidth = val
		}
		session.PenWidth = val
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	fileButtons := container.NewHBox(
		widget.NewButton("PNG", actions.ExportPNG),
		widget.NewButton("SVG", actions.ExportSVG),
		widget.NewButton("PDF", actions.ExportPDF),
		widget.NewSeparator(),
		widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), actions.Save),
		widget.NewButtonWithIcon("", theme.FolderOpenIcon(), actions.Load),
	)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
		fileButtons,
	)
}
