package export

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"

	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/state"
)

// canvas pixels to page millimeters
const pdfScale = 1.0 / 3.0

// page millimeters to font points
const mmToPt = 72.0 / 25.4

// pdfSurface replays the display list onto a gofpdf page. A clear-marker
// paints the page white since PDF content cannot be erased.
type pdfSurface struct {
	p *gofpdf.Fpdf
}

func (s *pdfSurface) Reset() {
	w, h := s.p.GetPageSize()
	s.p.SetFillColor(255, 255, 255)
	s.p.Rect(0, 0, w, h, "F")
}

func (s *pdfSurface) StrokeSegment(p1, p2 state.Point, c color.Color, width float32) {
	r, g, b, _ := c.RGBA()
	s.p.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
	s.p.SetLineWidth(float64(width) * pdfScale)
	s.p.Line(
		float64(p1.X)*pdfScale, float64(p1.Y)*pdfScale,
		float64(p2.X)*pdfScale, float64(p2.Y)*pdfScale,
	)
}

func (s *pdfSurface) PlaceGlyph(glyph string, at state.Point, size float32) {
	// The built-in fonts cannot embed emoji, so stickers appear as a
	// circled anchor with the glyph's bytes in the core font.
	x := float64(at.X) * pdfScale
	y := float64(at.Y) * pdfScale
	radius := float64(size) * pdfScale / 2

	s.p.SetDrawColor(120, 120, 120)
	s.p.SetLineWidth(0.3)
	s.p.Circle(x, y, radius, "D")
	s.p.SetFont("Helvetica", "", float64(size)*pdfScale*mmToPt)
	s.p.SetTextColor(0, 0, 0)
	s.p.Text(x-radius/2, y+radius/3, glyph)
}

// PDF replays the display list onto an A4 page and writes the document
// to w.
func PDF(w io.Writer, list *state.DisplayList) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	list.Replay(&pdfSurface{p: p})

	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	log.Printf("[EXPORT] PDF written (%d items)", list.Len())
	return nil
}
