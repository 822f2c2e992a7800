package ui

import (
	"fmt"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"GeoBoard/internal/board"
	"GeoBoard/internal/config"
	"GeoBoard/internal/export"
	"GeoBoard/internal/overlay"
)

// RunApp builds the window around a session configured from cfg and runs
// the event loop until the window closes.
func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("GeoBoard")

	// Colors were validated when the config loaded.
	bg, _ := config.ParseColor(cfg.Surface.Background)
	penColor, _ := config.ParseColor(cfg.Defaults.Color)

	session := board.NewSession(cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.Scale, bg, fyneMeasurer{})
	session.Color = penColor
	session.PenWidth = cfg.Defaults.PenWidth
	session.FontSize = cfg.Defaults.FontSize

	boardWidget := NewBoardWidget(session, myWindow)

	statusBar := widget.NewLabel("Ready")
	setStatus := func(text string) {
		statusBar.SetText(text)
		log.Printf("[board] %s", text)
	}
	session.Texts().OnReject = func(*overlay.Box) {
		setStatus("Text box is full")
	}

	actions := ToolbarActions{
		ExportPNG: func() {
			saveDialog(myWindow, cfg.Export.Directory, "board.png", setStatus, func(w io.Writer) error {
				img, err := session.RasterSnapshot()
				if err != nil {
					return err
				}
				return export.EncodePNG(w, img)
			})
		},
		ExportSVG: func() {
			saveDialog(myWindow, cfg.Export.Directory, "board.svg", setStatus, session.VectorSnapshot)
		},
		ExportPDF: func() {
			saveDialog(myWindow, cfg.Export.Directory, "board.pdf", setStatus, func(w io.Writer) error {
				return export.PDF(w, session.Scene())
			})
		},
		Save: func() {
			saveDialog(myWindow, cfg.Export.Directory, "board.json", setStatus, session.Save)
		},
		Load: func() {
			dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
				if err != nil || rc == nil {
					return
				}
				defer rc.Close()
				if err := session.Load(rc); err != nil {
					setStatus(fmt.Sprintf("Load failed: %v", err))
					return
				}
				setStatus("Loaded " + rc.URI().Name())
			}, myWindow)
		},
	}
	toolbar := NewToolbar(session, cfg.Defaults.EraserWidth, actions)

	content := container.NewBorder(toolbar, statusBar, nil, nil, container.NewCenter(boardWidget))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(cfg.Surface.Width)+64, float32(cfg.Surface.Height)+128))
	myWindow.ShowAndRun()
}

func saveDialog(win fyne.Window, dir, name string, status func(string), write func(io.Writer) error) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := write(wc); err != nil {
			status(fmt.Sprintf("Export failed: %v", err))
			return
		}
		status("Wrote " + wc.URI().Name())
	}, win)
	d.SetFileName(name)
	if dir != "" && dir != "." {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}
