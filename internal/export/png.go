package export

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/state"
)

// glyphFont renders sticker glyphs at their configured size. Glyphs the
// face lacks fall back to its notdef box, which still scales.
var glyphFont *opentype.Font

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("[EXPORT] Failed to parse glyph font: %v", err)
		return
	}
	glyphFont = f
}

// rasterSurface replays the display list onto an offscreen gg context.
type rasterSurface struct {
	dc *gg.Context
}

func (r *rasterSurface) Reset() {
	r.dc.SetColor(color.White)
	r.dc.Clear()
}

func (r *rasterSurface) StrokeSegment(p1, p2 state.Point, c color.Color, width float32) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(float64(width))
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.DrawLine(float64(p1.X), float64(p1.Y), float64(p2.X), float64(p2.Y))
	r.dc.Stroke()
}

func (r *rasterSurface) PlaceGlyph(glyph string, at state.Point, size float32) {
	r.dc.SetColor(color.Black)
	if glyphFont != nil {
		// 72 DPI makes the face size equal the sticker's pixel size,
		// matching the live renderer's TextSize.
		face, err := opentype.NewFace(glyphFont, &opentype.FaceOptions{
			Size: float64(size),
			DPI:  72,
		})
		if err == nil {
			r.dc.SetFontFace(face)
		}
	}
	r.dc.DrawStringAnchored(glyph, float64(at.X), float64(at.Y), 0.5, 0.5)
}

// PNG renders the display list at the given integer scale factor onto an
// offscreen surface and encodes it to w. Apart from resolution the result
// matches what the live renderer shows.
func PNG(w io.Writer, list *state.DisplayList, width, height float32, scale int) error {
	if scale < 1 {
		scale = 1
	}
	dc := gg.NewContext(int(width)*scale, int(height)*scale)
	dc.Scale(float64(scale), float64(scale))

	list.Replay(&rasterSurface{dc: dc})

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	log.Printf("[EXPORT] PNG rendered at %dx%d (%dx scale)", int(width)*scale, int(height)*scale, scale)
	return nil
}
