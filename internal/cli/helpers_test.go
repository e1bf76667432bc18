package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	paper = color.RGBA{235, 235, 235, 255}
	lens  = color.RGBA{30, 30, 40, 255}
)

// writeDiskPNG writes a width×height PNG with a dark disk of radius r
// centered at (cx, cy) and returns its path
func writeDiskPNG(t *testing.T, width, height, cx, cy, r int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, lens)
			} else {
				img.Set(x, y, paper)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "artwork.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// smallDiskArgs are the radius bounds used with the 60px test disk
var smallDiskArgs = []string{"--min-radius", "40", "--max-radius", "90"}

// execute runs the root command with args and returns the exit code and
// both output streams
func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	code := Execute(cmd)
	return code, stdout.String(), stderr.String()
}
