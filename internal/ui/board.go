package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"GeoBoard/internal/board"
	"GeoBoard/internal/overlay"
)

// BoardWidget shows the drawing surface: background fill, the session's
// ink layer, and one positioned entry per text box. All pointer input is
// forwarded to the session, which owns the actual state.
type BoardWidget struct {
	widget.BaseWidget
	session *board.Session
	win     fyne.Window

	background *canvas.Rectangle
	ink        *canvas.Raster
	entries    map[string]*boxEntry
	syncing    bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(session *board.Session, win fyne.Window) *BoardWidget {
	b := &BoardWidget{
		session: session,
		win:     win,
		entries: make(map[string]*boxEntry),
	}
	b.background = canvas.NewRectangle(session.Background())
	b.ink = canvas.NewRaster(func(w, h int) image.Image {
		return b.session.Ink()
	})
	session.OnChange = b.refresh
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) refresh() {
	b.background.FillColor = b.session.Background()
	b.syncEntries()
	b.Refresh()
}

// syncEntries reconciles the entry widgets with the overlay manager's box
// collection: create for new boxes, reposition/resize live ones, drop the
// rest.
func (b *BoardWidget) syncEntries() {
	live := make(map[string]*overlay.Box)
	for _, box := range b.session.Texts().Boxes() {
		live[box.ID] = box
	}
	for id := range b.entries {
		if _, ok := live[id]; !ok {
			delete(b.entries, id)
		}
	}
	for id, box := range live {
		e, ok := b.entries[id]
		if !ok {
			e = b.newEntry(box)
			b.entries[id] = e
		}
		e.Move(fyne.NewPos(float32(box.X), float32(box.Y)))
		e.Resize(fyne.NewSize(float32(box.W), float32(box.H)))
		if e.Text != box.Content {
			b.syncing = true
			e.SetText(box.Content)
			b.syncing = false
		}
	}
}

func (b *BoardWidget) newEntry(box *overlay.Box) *boxEntry {
	e := newBoxEntry()
	e.onFocus = func() {
		b.session.Texts().Focus(box)
		b.Refresh()
	}
	e.OnChanged = func(text string) {
		if b.syncing {
			return
		}
		if !b.session.Texts().Edit(box, text) {
			// Rejected: snap the entry back to the last valid content.
			b.syncing = true
			e.SetText(box.Content)
			b.syncing = false
		}
		b.refresh()
	}
	return e
}

// focusEntry gives keyboard focus to the entry of the given box.
func (b *BoardWidget) focusEntry(box *overlay.Box) {
	if box == nil || b.win == nil {
		return
	}
	if e, ok := b.entries[box.ID]; ok {
		b.win.Canvas().Focus(e)
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	before := b.session.Texts().Focused()
	b.session.PointerDown(float64(e.Position.X), float64(e.Position.Y), 0)
	if after := b.session.Texts().Focused(); after != nil && after != before {
		b.syncEntries()
		b.focusEntry(after)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.PointerUp()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.session.PointerMove(float64(e.Position.X), float64(e.Position.Y), 0)
}

func (b *BoardWidget) DragEnd() {
	b.session.PointerUp()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// MouseOut commits any stroke in flight so leaving the surface never
// strands a half-drawn stroke.
func (b *BoardWidget) MouseOut() {
	b.session.PointerUp()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{board: b}
}

type boardRenderer struct {
	board *BoardWidget
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.board.background, r.board.ink}
	for _, box := range r.board.session.Texts().Boxes() {
		if e, ok := r.board.entries[box.ID]; ok {
			objects = append(objects, e)
		}
	}
	return objects
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.board.background.Resize(size)
	r.board.ink.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	w, h := r.board.session.Size()
	return fyne.NewSize(float32(w), float32(h))
}

func (r *boardRenderer) Refresh() {
	r.board.background.Refresh()
	r.board.ink.Refresh()
}

func (r *boardRenderer) Destroy() {}

// boxEntry is a multi-line entry that reports focus gains, so interacting
// with a box raises it above its siblings.
type boxEntry struct {
	widget.Entry
	onFocus func()
}

func newBoxEntry() *boxEntry {
	e := &boxEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.ExtendBaseWidget(e)
	return e
}

func (e *boxEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.onFocus != nil {
		e.onFocus()
	}
}
