package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/config"
	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/export"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

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

// --- The Main Toolbar ---
func NewToolbar(win fyne.Window, sketch *SketchWidget, cfg config.Config) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), sketch.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), sketch.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), sketch.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DownloadIcon(), func() { exportPNG(win, sketch, cfg) }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { exportPDF(win, sketch) }),
	)

	// --- Marker Tools ---
	thin := widget.NewButton("Thin", func() { sketch.SetMarker(cfg.Marker.Thin) })
	thick := widget.NewButton("Thick", func() { sketch.SetMarker(cfg.Marker.Thick) })

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		sketch.SetColor(c)
	}
	colorBox := container.NewHBox()
	for _, hex := range cfg.Palette {
		c, err := config.ParseColor(hex)
		if err != nil {
			log.Printf("Skipping palette entry: %v", err)
			continue
		}
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}
	picker := widget.NewButton("More…", func() {
		dialog.ShowColorPicker("Marker color", "Pick a marker color", func(c color.Color) {
			sketch.SetColor(c)
		}, win)
	})

	// --- Sticker Palette ---
	stickers := widget.NewSelect(cfg.Stickers, func(glyph string) {
		sketch.SetSticker(glyph)
	})
	stickers.PlaceHolder = "Sticker"
	custom := widget.NewButton("Custom…", func() {
		dialog.ShowEntryDialog("Custom sticker", "Glyph", func(glyph string) {
			if glyph != "" {
				sketch.SetSticker(glyph)
			}
		}, win)
	})

	// --- Assemble everything ---
	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Marker:"),
		thin,
		thick,
		colorBox,
		picker,
		widget.NewSeparator(),
		stickers,
		custom,
		layout.NewSpacer(),
	)
}

func exportPNG(win fyne.Window, sketch *SketchWidget, cfg config.Config) {
	dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return // cancelled
		}
		defer func() {
			if err := wc.Close(); err != nil {
				log.Printf("Error closing writer: %v", err)
			}
		}()
		if err := export.PNG(wc, sketch.List(), cfg.Canvas.Width, cfg.Canvas.Height, cfg.Export.Scale); err != nil {
			log.Printf("PNG export failed: %v", err)
			sketch.SetStatus("PNG export failed")
			return
		}
		sketch.SetStatus("Exported " + wc.URI().Name())
	}, win)
}

func exportPDF(win fyne.Window, sketch *SketchWidget) {
	dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return
		}
		defer func() {
			if err := wc.Close(); err != nil {
				log.Printf("Error closing writer: %v", err)
			}
		}()
		if err := export.PDF(wc, sketch.List()); err != nil {
			log.Printf("PDF export failed: %v", err)
			sketch.SetStatus("PDF export failed")
			return
		}
		sketch.SetStatus("Exported " + wc.URI().Name())
	}, win)
}
