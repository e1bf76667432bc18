package detection

import (
	"image"
	"math"
)

// edgeMap holds the Canny edge mask together with the Sobel gradients the
// Hough voting step needs. All slices are row-major, width*height long.
type edgeMap struct {
	width, height int
	edges         []bool
	dx, dy        []float64
}

func (m *edgeMap) at(x, y int) int {
	return y*m.width + x
}

// cannyEdges runs Canny edge detection on an 8-bit grayscale plane.
//
// Gradients come from 3x3 Sobel operators on raw 0-255 intensities, so the
// thresholds have the same scale as OpenCV's Canny with an aperture of 3.
// The magnitude is the L1 norm |Gx| + |Gy|.
//
// # Algorithm
//
//  1. Sobel gradients with replicated borders
//  2. Non-maximum suppression along the quantized gradient direction
//  3. Hysteresis: pixels above high seed edges, pixels above low join an
//     edge when 8-connected to a seed
//
// Border pixels are never edges.
func cannyEdges(gray *image.Gray, low, high float64) *edgeMap {
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	m := &edgeMap{
		width:  width,
		height: height,
		edges:  make([]bool, width*height),
		dx:     make([]float64, width*height),
		dy:     make([]float64, width*height),
	}
	if width < 3 || height < 3 {
		return m
	}

	pixel := func(x, y int) float64 {
		x = clamp(x, 0, width-1)
		y = clamp(y, 0, height-1)
		return float64(gray.Pix[y*gray.Stride+x])
	}

	magnitude := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tl, t, tr := pixel(x-1, y-1), pixel(x, y-1), pixel(x+1, y-1)
			l, r := pixel(x-1, y), pixel(x+1, y)
			bl, b, br := pixel(x-1, y+1), pixel(x, y+1), pixel(x+1, y+1)

			gx := (tr + 2*r + br) - (tl + 2*l + bl)
			gy := (bl + 2*b + br) - (tl + 2*t + tr)

			i := m.at(x, y)
			m.dx[i] = gx
			m.dy[i] = gy
			magnitude[i] = math.Abs(gx) + math.Abs(gy)
		}
	}

	// Non-maximum suppression
	const (
		strong = 2
		weak   = 1
	)
	class := make([]uint8, width*height)
	var stack []int

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := m.at(x, y)
			mag := magnitude[i]
			if mag <= low {
				continue
			}

			angle := math.Atan2(m.dy[i], m.dx[i])
			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1 = magnitude[m.at(x-1, y)]
				n2 = magnitude[m.at(x+1, y)]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1 = magnitude[m.at(x-1, y-1)]
				n2 = magnitude[m.at(x+1, y+1)]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1 = magnitude[m.at(x, y-1)]
				n2 = magnitude[m.at(x, y+1)]
			default:
				n1 = magnitude[m.at(x+1, y-1)]
				n2 = magnitude[m.at(x-1, y+1)]
			}
			if mag < n1 || mag < n2 {
				continue
			}

			if mag > high {
				class[i] = strong
				stack = append(stack, i)
			} else {
				class[i] = weak
			}
		}
	}

	// Hysteresis: grow edges from strong pixels through weak ones
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if m.edges[i] {
			continue
		}
		m.edges[i] = true

		x, y := i%width, i/width
		for ky := -1; ky <= 1; ky++ {
			for kx := -1; kx <= 1; kx++ {
				if kx == 0 && ky == 0 {
					continue
				}
				nx, ny := x+kx, y+ky
				if nx <= 0 || ny <= 0 || nx >= width-1 || ny >= height-1 {
					continue
				}
				j := m.at(nx, ny)
				if class[j] != 0 && !m.edges[j] {
					stack = append(stack, j)
				}
			}
		}
	}

	return m
}

// clamp constrains an integer value to the range [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
