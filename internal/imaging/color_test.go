package imaging

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#00ff00", color.NRGBA{G: 255, A: 255}},
		{"#FF0000", color.NRGBA{R: 255, A: 255}},
		{"0000ff", color.NRGBA{B: 255, A: 255}},
		{"#fc0", color.NRGBA{R: 255, G: 204, A: 255}},
		{"  #123456 ", color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "green", "#zzz", "#12"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			assert.Error(t, err)
		})
	}
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#00ff00", HexColor(color.NRGBA{G: 255, A: 255}))
	assert.Equal(t, "#ff0000", HexColor(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, "#123456", HexColor(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 10}))
}
