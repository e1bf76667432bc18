package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// ITU-R BT.601 luma weights, the same ones OpenCV uses for BGR to gray.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Grayscale converts img to an 8-bit luminance plane whose bounds start at
// (0, 0).
func Grayscale(img image.Image) *image.Gray {
	return firstChannel(effect.GrayscaleWithWeights(img, lumaR, lumaG, lumaB))
}

// MedianBlur replaces every pixel with the median of its ksize×ksize
// neighborhood. Borders are extended. A ksize below 3 returns gray as is;
// an even ksize behaves like ksize+1.
func MedianBlur(gray *image.Gray, ksize int) *image.Gray {
	if ksize < 3 {
		return toOrigin(gray)
	}

	return firstChannel(effect.Median(gray, float64(ksize/2)))
}

// firstChannel copies the red channel of a gray RGBA image from bild into an
// 8-bit plane whose bounds start at (0, 0).
func firstChannel(rgba *image.RGBA) *image.Gray {
	bounds := rgba.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			// Every channel holds the same value
			out.Pix[y*out.Stride+x] = rgba.Pix[rgba.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)]
		}
	}
	return out
}

// Smooth is the preprocessing every circle detector expects: grayscale
// conversion followed by a median blur of the given kernel size.
func Smooth(img image.Image, ksize int) *image.Gray {
	return MedianBlur(Grayscale(img), ksize)
}

// toOrigin returns gray itself when its bounds start at (0, 0), and a
// translated copy otherwise.
func toOrigin(gray *image.Gray) *image.Gray {
	bounds := gray.Bounds()
	if bounds.Min == (image.Point{}) {
		return gray
	}

	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		src := gray.Pix[gray.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		copy(out.Pix[y*out.Stride:y*out.Stride+bounds.Dx()], src[:bounds.Dx()])
	}
	return out
}
