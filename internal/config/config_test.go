package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palide/detect-lens/internal/detection"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(newViper(), "lens.png")
	require.NoError(t, err)

	assert.Equal(t, "lens.png", cfg.ImagePath)
	assert.Empty(t, cfg.OverlayPath)
	assert.Equal(t, detection.DefaultParams(), cfg.Detection)
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, cfg.Overlay.CircleColor)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, cfg.Overlay.CenterColor)
	assert.Equal(t, 3, cfg.Overlay.Thickness)
	assert.Equal(t, 4, cfg.Overlay.CenterRadius)
	assert.False(t, cfg.JSON)
	assert.False(t, cfg.Verbose)
}

func TestDefault_MatchesDocumentedValues(t *testing.T) {
	p := Default().Detection
	assert.Equal(t, 120, p.MinRadius)
	assert.Equal(t, 260, p.MaxRadius)
	assert.Equal(t, 200.0, p.MinDist)
	assert.Equal(t, 1.2, p.DP)
	assert.Equal(t, 80.0, p.Param1)
	assert.Equal(t, 30.0, p.Param2)
}

func TestFromViper_Overrides(t *testing.T) {
	v := newViper()
	v.Set(KeyMinRadius, 40)
	v.Set(KeyMaxRadius, 90)
	v.Set(KeyMinDist, 50)
	v.Set(KeyDP, 1.0)
	v.Set(KeyParam1, 100.0)
	v.Set(KeyParam2, 20.0)
	v.Set(KeyDebugOverlay, "out.png")
	v.Set(KeyCircleColor, "#FFCC00")
	v.Set(KeyOverlayLabel, true)
	v.Set(KeyJSON, true)

	cfg, err := FromViper(v, "lens.png")
	require.NoError(t, err)

	assert.Equal(t, detection.Params{DP: 1, MinDist: 50, Param1: 100, Param2: 20, MinRadius: 40, MaxRadius: 90}, cfg.Detection)
	assert.Equal(t, "out.png", cfg.OverlayPath)
	assert.Equal(t, color.NRGBA{R: 255, G: 204, B: 0, A: 255}, cfg.Overlay.CircleColor)
	assert.True(t, cfg.Overlay.Label)
	assert.True(t, cfg.JSON)
}

func TestFromViper_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detect.yaml")
	content := "min-radius: 90\nmax-radius: 200\nparam2: 40\ncenter-color: \"#0000ff\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := FromViper(v, "lens.png")
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.Detection.MinRadius)
	assert.Equal(t, 200, cfg.Detection.MaxRadius)
	assert.Equal(t, 40.0, cfg.Detection.Param2)
	assert.Equal(t, 1.2, cfg.Detection.DP, "keys absent from the file keep their defaults")
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, cfg.Overlay.CenterColor)
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"zero dp", KeyDP, 0.0},
		{"negative dp", KeyDP, -1.2},
		{"zero min-dist", KeyMinDist, 0},
		{"zero param1", KeyParam1, 0.0},
		{"zero param2", KeyParam2, 0.0},
		{"negative min-radius", KeyMinRadius, -5},
		{"negative max-radius", KeyMaxRadius, -5},
		{"bad circle color", KeyCircleColor, "not-a-color"},
		{"bad center color", KeyCenterColor, "#12"},
		{"unknown detector", KeyDetector, "magic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := FromViper(v, "lens.png")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestFromViper_InvertedRadiusBoundsAllowed(t *testing.T) {
	v := newViper()
	v.Set(KeyMinRadius, 200)
	v.Set(KeyMaxRadius, 100)

	_, err := FromViper(v, "lens.png")
	assert.NoError(t, err)
}

func TestValidate_RequiresImagePath(t *testing.T) {
	err := Default().Validate()
	assert.ErrorIs(t, err, ErrInvalid)
}
