package main

import (
	"flag"
	"log"

	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/config"
	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/state"
	"github.com/KupoDupo/D2-Sticker-Sketchpad/internal/ui"
)

func main() {
	configPath := flag.String("config", "sketchpad.toml", "path to the sketchpad config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting sketchpad (%.0fx%.0f canvas, %dx export scale)",
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.Export.Scale)

	list := state.NewDisplayList()
	ui.RunApp(cfg, list)
}
