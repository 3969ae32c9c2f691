package state

import (
	"image/color"

	"github.com/google/uuid"
)

// Point represents a position in canvas pixel space
type Point struct{ X, Y float32 }

// Surface is a render target the display list is replayed onto. The live
// widget renderer, the PNG exporter and the PDF exporter all implement it.
type Surface interface {
	// Reset wipes the surface back to its blank background.
	Reset()
	// StrokeSegment draws one line segment of a marker stroke.
	StrokeSegment(p1, p2 Point, c color.Color, width float32)
	// PlaceGlyph draws a sticker glyph centered on at.
	PlaceGlyph(glyph string, at Point, size float32)
}

// Item is a single drawable entry in the display list. Extend grows the
// item while the pointer drags (next point of a stroke, new anchor of a
// sticker); Display replays it onto a surface.
type Item interface {
	Extend(p Point)
	Display(s Surface)
}

// Stroke is a freehand marker line
type Stroke struct {
	ID     string
	Points []Point
	Color  color.Color
	Width  float32
}

func NewStroke(at Point, c color.Color, width float32) *Stroke {
	return &Stroke{
		ID:     uuid.NewString(),
		Points: []Point{at},
		Color:  c,
		Width:  width,
	}
}

func (s *Stroke) ItemID() string { return s.ID }

func (s *Stroke) Extend(p Point) {
	s.Points = append(s.Points, p)
}

func (s *Stroke) Display(surf Surface) {
	for i := 1; i < len(s.Points); i++ {
		surf.StrokeSegment(s.Points[i-1], s.Points[i], s.Color, s.Width)
	}
}

// Sticker is a glyph anchored at a single position. Dragging a sticker
// moves its anchor rather than accumulating points.
type Sticker struct {
	ID    string
	Glyph string
	At    Point
	Size  float32
}

func NewSticker(glyph string, at Point, size float32) *Sticker {
	return &Sticker{
		ID:    uuid.NewString(),
		Glyph: glyph,
		At:    at,
		Size:  size,
	}
}

func (s *Sticker) ItemID() string { return s.ID }

func (s *Sticker) Extend(p Point) {
	s.At = p
}

func (s *Sticker) Display(surf Surface) {
	surf.PlaceGlyph(s.Glyph, s.At, s.Size)
}

// clearMark wipes everything replayed before it
type clearMark struct{}

// NewClear returns a clear-marker item.
func NewClear() Item { return clearMark{} }

func (clearMark) Extend(Point) {}

func (clearMark) Display(s Surface) {
	s.Reset()
}

func isClear(it Item) bool {
	_, ok := it.(clearMark)
	return ok
}
