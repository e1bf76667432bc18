package detection

import (
	"image"
	"image/color"
	"math/rand"
)

// disk describes a filled circle drawn into a test image.
type disk struct {
	cx, cy, r int
}

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createDiskImage draws solid disks of fg on a bg background
func createDiskImage(width, height int, bg, fg color.Color, disks ...disk) *image.RGBA {
	img := createTestImage(width, height, bg)
	for _, d := range disks {
		for y := d.cy - d.r; y <= d.cy+d.r; y++ {
			for x := d.cx - d.r; x <= d.cx+d.r; x++ {
				dx, dy := x-d.cx, y-d.cy
				if dx*dx+dy*dy <= d.r*d.r {
					img.Set(x, y, fg)
				}
			}
		}
	}
	return img
}

// addSaltAndPepper flips a fraction of the pixels to pure black or white,
// using a fixed seed so the result is reproducible
func addSaltAndPepper(img *image.RGBA, fraction float64) {
	rng := rand.New(rand.NewSource(1))
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if rng.Float64() >= fraction {
				continue
			}
			if rng.Intn(2) == 0 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
}

// smallParams are tuned for the 40-90px circles used in most tests
func smallParams() Params {
	return Params{
		DP:        1.2,
		MinDist:   200,
		Param1:    80,
		Param2:    30,
		MinRadius: 40,
		MaxRadius: 90,
	}
}

var (
	dark  = color.RGBA{40, 40, 40, 255}
	light = color.RGBA{235, 235, 235, 255}
)
