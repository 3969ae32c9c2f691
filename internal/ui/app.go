package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/config"
	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/state"
)

func RunApp(cfg config.Config, list *state.DisplayList) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Sticker Sketchpad")

	// Create the interactive sketch widget
	sketch := NewSketchWidget(list, cfg)

	// Create the toolbar and pass it a reference to the sketch widget
	toolbar := NewToolbar(myWindow, sketch, cfg)

	// Set up the main layout
	content := container.NewBorder(toolbar, sketch.StatusBar(), nil, nil, sketch)

	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(cfg.Canvas.Width, cfg.Canvas.Height+100))
	myWindow.ShowAndRun()
}
