package config

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the sketchpad settings read from sketchpad.toml.
type Config struct {
	Canvas   CanvasConfig `toml:"canvas"`
	Marker   MarkerConfig `toml:"marker"`
	Export   ExportConfig `toml:"export"`
	Palette  []string     `toml:"palette"`  // hex colors offered as swatches
	Stickers []string     `toml:"stickers"` // glyphs offered by the sticker tool
}

type CanvasConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type MarkerConfig struct {
	Thin  float32 `toml:"thin"`
	Thick float32 `toml:"thick"`
}

type ExportConfig struct {
	Scale       int     `toml:"scale"` // raster scale factor for PNG export
	StickerSize float32 `toml:"sticker_size"`
}

func Default() Config {
	return Config{
		Canvas:   CanvasConfig{Width: 960, Height: 640},
		Marker:   MarkerConfig{Thin: 2, Thick: 8},
		Export:   ExportConfig{Scale: 4, StickerSize: 32},
		Palette:  []string{"#000000", "#ff0000", "#00aa00", "#0000ff", "#ffaa00"},
		Stickers: []string{"😀", "🎉", "⭐"},
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	log.Printf("[CONFIG] Loaded %s", path)
	return cfg, nil
}

// ParseColor converts a "#rrggbb" palette entry to a color.
func ParseColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
