package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Surface.Width)
	assert.Equal(t, 600, cfg.Surface.Height)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[surface]
width = 1024
height = 768

[defaults]
pen_width = 5.0
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Surface.Width)
	assert.Equal(t, 768, cfg.Surface.Height)
	assert.Equal(t, 5.0, cfg.Defaults.PenWidth)
	// Untouched sections keep their defaults.
	assert.Equal(t, "#ffffff", cfg.Surface.Background)
	assert.Equal(t, 20.0, cfg.Defaults.FontSize)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"zero width", "[surface]\nwidth = 0\n"},
		{"negative scale", "[surface]\nscale = -1.0\n"},
		{"bad color", "[surface]\nbackground = \"blue\"\n"},
		{"bad toml", "[[surface\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "board.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#000000", want: color.NRGBA{A: 255}},
		{in: "#ff0000", want: color.NRGBA{R: 255, A: 255}},
		{in: "#00ff0080", want: color.NRGBA{G: 255, A: 128}},
		{in: "ff0000", wantErr: true},
		{in: "#ff00", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
