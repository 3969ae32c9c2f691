package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketchpad.toml")
	data := `
palette = ["#112233"]
stickers = ["A", "B"]

[canvas]
width = 400
height = 300

[marker]
thin = 1
thick = 12

[export]
scale = 2
sticker_size = 48
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(400), cfg.Canvas.Width)
	assert.Equal(t, float32(300), cfg.Canvas.Height)
	assert.Equal(t, float32(12), cfg.Marker.Thick)
	assert.Equal(t, 2, cfg.Export.Scale)
	assert.Equal(t, float32(48), cfg.Export.StickerSize)
	assert.Equal(t, []string{"#112233"}, cfg.Palette)
	assert.Equal(t, []string{"A", "B"}, cfg.Stickers)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("canvas = {"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, c)

	_, err = ParseColor("red")
	assert.Error(t, err)
}
