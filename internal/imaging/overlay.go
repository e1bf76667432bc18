package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrOverlayWrite matches every error returned by SaveOverlay.
var ErrOverlayWrite = errors.New("overlay write failed")

// OverlayStyle controls how DrawOverlay marks a detected circle.
type OverlayStyle struct {
	// CircleColor is the color of the circle outline.
	CircleColor color.NRGBA

	// CenterColor is the color of the filled center marker.
	CenterColor color.NRGBA

	// Thickness is the outline width in pixels.
	Thickness int

	// CenterRadius is the radius of the center marker in pixels.
	CenterRadius int

	// Label draws "(x, y) r=R" next to the circle when true.
	Label bool
}

// DefaultOverlayStyle returns a 3px green outline with a 4px red center dot
// and no label.
func DefaultOverlayStyle() OverlayStyle {
	return OverlayStyle{
		CircleColor:  color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		CenterColor:  color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		Thickness:    3,
		CenterRadius: 4,
	}
}

// DrawOverlay returns a copy of img with the circle (x, y, r) marked on it.
// The coordinates are relative to the top-left corner of img's bounds and
// are truncated to whole pixels. img itself is never modified.
func DrawOverlay(img image.Image, x, y, r float64, style OverlayStyle) *image.NRGBA {
	dst := imaging.Clone(img)

	cx, cy, radius := int(x), int(y), int(r)

	half := float64(max(style.Thickness, 1)) / 2
	drawRing(dst, cx, cy, float64(radius)-half, float64(radius)+half, style.CircleColor)
	drawRing(dst, cx, cy, -1, float64(style.CenterRadius), style.CenterColor)

	if style.Label {
		text := fmt.Sprintf("(%.0f, %.0f) r=%.0f", x, y, r)
		drawLabel(dst, cx+radius+6, cy+4, text, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, color.NRGBA{A: 180})
	}

	return dst
}

// SaveOverlay writes img to path. The format follows the file extension
// (.png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff).
func SaveOverlay(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOverlayWrite, path, err)
	}
	return nil
}

// drawRing paints every pixel whose center lies at a distance in
// (inner, outer] from (cx, cy). An inner radius below zero fills a disk.
func drawRing(dst *image.NRGBA, cx, cy int, inner, outer float64, c color.NRGBA) {
	if outer < 0 {
		return
	}

	bounds := dst.Bounds()
	reach := int(outer) + 1
	x0, x1 := max(cx-reach, bounds.Min.X), min(cx+reach, bounds.Max.X-1)
	y0, y1 := max(cy-reach, bounds.Min.Y), min(cy+reach, bounds.Max.Y-1)

	inner2 := inner * inner
	if inner < 0 {
		inner2 = -1
	}
	outer2 := outer * outer

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := float64(px - cx)
			dy := float64(py - cy)
			d2 := dx*dx + dy*dy
			if d2 > inner2 && d2 <= outer2 {
				dst.SetNRGBA(px, py, c)
			}
		}
	}
}

// drawLabel draws text with its baseline at (x, y) over a filled box.
// The label is clipped to the image.
func drawLabel(dst *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	face := basicfont.Face7x13

	textBounds, _ := font.BoundString(face, text)
	box := image.Rect(
		x+textBounds.Min.X.Floor()-2,
		y+textBounds.Min.Y.Floor()-2,
		x+textBounds.Max.X.Ceil()+2,
		y+textBounds.Max.Y.Ceil()+2,
	).Intersect(dst.Bounds())
	draw.Draw(dst, box, image.NewUniform(bg), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
