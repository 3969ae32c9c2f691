package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/config"
	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/state"
)

// Tool selects what a pointer-down gesture creates.
type Tool int

const (
	ToolMarker Tool = iota
	ToolSticker
)

// SketchWidget is the drawing surface. Pointer-down begins a display-list
// item, dragging extends it, release or leaving the canvas ends the
// gesture. Rendering replays the display list on every change.
type SketchWidget struct {
	widget.BaseWidget
	list *state.DisplayList

	tool          Tool
	currentColor  color.Color
	currentWidth  float32
	currentGlyph  string
	stickerSize   float32
	width, height float32

	drawing  bool
	hovering bool
	cursor   state.Point

	statusBar *widget.Label
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)
var _ desktop.Hoverable = (*SketchWidget)(nil)

func NewSketchWidget(list *state.DisplayList, cfg config.Config) *SketchWidget {
	s := &SketchWidget{
		list:         list,
		tool:         ToolMarker,
		currentColor: color.Black,
		currentWidth: cfg.Marker.Thin,
		currentGlyph: "😀",
		stickerSize:  cfg.Export.StickerSize,
		width:        cfg.Canvas.Width,
		height:       cfg.Canvas.Height,
		statusBar:    widget.NewLabel("Ready"),
	}
	if len(cfg.Stickers) > 0 {
		s.currentGlyph = cfg.Stickers[0]
	}
	s.ExtendBaseWidget(s)

	// the change notification drives every repaint
	list.OnChange = func() { s.Refresh() }
	return s
}

func (s *SketchWidget) List() *state.DisplayList { return s.list }

func (s *SketchWidget) StatusBar() fyne.CanvasObject { return s.statusBar }

func (s *SketchWidget) SetStatus(text string) {
	s.statusBar.SetText(text)
}

func (s *SketchWidget) SetColor(c color.Color) {
	s.currentColor = c
	s.Refresh()
}

// SetMarker selects the marker tool with the given stroke width.
func (s *SketchWidget) SetMarker(width float32) {
	s.tool = ToolMarker
	s.currentWidth = width
	s.SetStatus(fmt.Sprintf("Marker %.0fpx", width))
	s.Refresh()
}

// SetSticker selects the sticker tool with the given glyph.
func (s *SketchWidget) SetSticker(glyph string) {
	s.tool = ToolSticker
	s.currentGlyph = glyph
	s.SetStatus("Sticker " + glyph)
	s.Refresh()
}

func (s *SketchWidget) Undo() {
	if !s.list.Undo() {
		s.SetStatus("Nothing to undo")
		return
	}
	s.SetStatus(fmt.Sprintf("Undo (%d items, %d redoable)", s.list.Len(), s.list.RedoLen()))
}

func (s *SketchWidget) Redo() {
	if !s.list.Redo() {
		s.SetStatus("Nothing to redo")
		return
	}
	s.SetStatus(fmt.Sprintf("Redo (%d items, %d redoable)", s.list.Len(), s.list.RedoLen()))
}

func (s *SketchWidget) Clear() {
	s.list.Clear()
	s.SetStatus("Cleared")
}

func (s *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.drawing = true
	at := state.Point{X: e.Position.X, Y: e.Position.Y}
	switch s.tool {
	case ToolSticker:
		s.list.Begin(state.NewSticker(s.currentGlyph, at, s.stickerSize))
	default:
		s.list.Begin(state.NewStroke(at, s.currentColor, s.currentWidth))
	}
}

func (s *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && s.drawing {
		s.drawing = false
		s.Refresh()
	}
}

func (s *SketchWidget) Dragged(e *fyne.DragEvent) {
	if !s.drawing {
		return
	}
	s.cursor = state.Point{X: e.Position.X, Y: e.Position.Y}
	s.list.Extend(s.cursor)
}

func (s *SketchWidget) DragEnd() {
	s.drawing = false
}

func (s *SketchWidget) MouseIn(e *desktop.MouseEvent) {
	s.hovering = true
	s.cursor = state.Point{X: e.Position.X, Y: e.Position.Y}
	s.Refresh()
}

func (s *SketchWidget) MouseMoved(e *desktop.MouseEvent) {
	s.cursor = state.Point{X: e.Position.X, Y: e.Position.Y}
	if !s.drawing {
		s.Refresh()
	}
}

// MouseOut ends any active gesture, matching pointer-leave on the canvas.
func (s *SketchWidget) MouseOut() {
	s.hovering = false
	s.drawing = false
	s.Refresh()
}

func (s *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchRenderer{sketch: s}
	r.background = canvas.NewRectangle(color.White)
	return r
}

// previewObjects builds the transient tool cursor overlay. It is never
// part of the display list.
func (s *SketchWidget) previewObjects() []fyne.CanvasObject {
	if s.tool == ToolSticker {
		ghost := canvas.NewText(s.currentGlyph, color.NRGBA{A: 128})
		ghost.TextSize = s.stickerSize
		ghost.Move(fyne.NewPos(s.cursor.X-s.stickerSize/2, s.cursor.Y-s.stickerSize/2))
		return []fyne.CanvasObject{ghost}
	}

	d := s.currentWidth * 2
	if d < 6 {
		d = 6
	}
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = s.currentColor
	ring.StrokeWidth = 1
	ring.Resize(fyne.NewSize(d, d))
	ring.Move(fyne.NewPos(s.cursor.X-d/2, s.cursor.Y-d/2))
	return []fyne.CanvasObject{ring}
}

// objectSurface implements state.Surface by collecting canvas objects.
type objectSurface struct {
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (o *objectSurface) Reset() {
	o.objects = []fyne.CanvasObject{o.background}
}

func (o *objectSurface) StrokeSegment(p1, p2 state.Point, c color.Color, width float32) {
	segment := canvas.NewLine(c)
	segment.StrokeWidth = width
	segment.Position1 = fyne.NewPos(p1.X, p1.Y)
	segment.Position2 = fyne.NewPos(p2.X, p2.Y)
	o.objects = append(o.objects, segment)
}

func (o *objectSurface) PlaceGlyph(glyph string, at state.Point, size float32) {
	text := canvas.NewText(glyph, color.Black)
	text.TextSize = size
	text.Move(fyne.NewPos(at.X-size/2, at.Y-size/2))
	o.objects = append(o.objects, text)
}

type sketchRenderer struct {
	sketch     *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	surf := &objectSurface{background: r.background}
	r.sketch.list.Replay(surf)

	objects := surf.objects
	if r.sketch.hovering && !r.sketch.drawing {
		objects = append(objects, r.sketch.previewObjects()...)
	}
	return objects
}

func (r *sketchRenderer) Refresh() {
	canvas.Refresh(r.sketch)
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.sketch.width, r.sketch.height)
}

func (r *sketchRenderer) Destroy() {}
