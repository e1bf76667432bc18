package detection

import (
	"image"
	"math"
	"sort"
)

// HoughGradient is the pure-Go circular Hough transform. It implements the
// HOUGH_GRADIENT method: edge pixels vote along their gradient direction
// rather than around a full circle, which keeps the accumulator 2-D.
type HoughGradient struct{}

// Name implements Detector.
func (HoughGradient) Name() string { return "hough" }

// houghCenter is a center candidate in accumulator space.
type houghCenter struct {
	cell  int
	votes int
}

// Detect implements Detector.
//
// # Complexity
//
// Voting costs O(edges × (MaxRadius - MinRadius)). Radius estimation costs
// O(edges × log(edges)) per surviving center candidate, and MinDist caps how
// many of those there are.
func (HoughGradient) Detect(gray *image.Gray, p Params) ([]Circle, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, nil
	}

	// Radii beyond the image size cannot gather more support.
	minRadius := p.MinRadius
	maxRadius := p.MaxRadius
	if maxRadius == 0 || maxRadius > max(width, height) {
		maxRadius = max(width, height)
	}
	if maxRadius < minRadius {
		return nil, nil
	}

	edges := cannyEdges(gray, math.Max(p.Param1/2, 1), p.Param1)

	// The accumulator is never finer than the image.
	dp := math.Max(p.DP, 1)
	idp := 1 / dp
	acols := int(math.Ceil(float64(width) * idp))
	arows := int(math.Ceil(float64(height) * idp))

	// One cell of padding on every side keeps the local-maximum test free of
	// bounds checks.
	stride := acols + 2
	acc := make([]int, stride*(arows+2))

	xs := make([]float64, 0, 1024)
	ys := make([]float64, 0, 1024)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := edges.at(x, y)
			if !edges.edges[i] {
				continue
			}
			vx, vy := edges.dx[i], edges.dy[i]
			mag := math.Hypot(vx, vy)
			if mag == 0 {
				continue
			}
			xs = append(xs, float64(x))
			ys = append(ys, float64(y))

			sx := vx / mag * idp
			sy := vy / mag * idp
			x0 := float64(x) * idp
			y0 := float64(y) * idp

			for dir := 0; dir < 2; dir++ {
				lastCell := -1
				for r := minRadius; r <= maxRadius; r++ {
					fx := x0 + float64(r)*sx
					fy := y0 + float64(r)*sy
					if fx < 0 || fy < 0 {
						break
					}
					ax, ay := int(fx), int(fy)
					if ax < 0 || ax >= acols || ay < 0 || ay >= arows {
						break
					}
					cell := (ay+1)*stride + ax + 1
					// With DP > 1 consecutive radii can land in the same
					// cell; one edge pixel votes once per cell.
					if cell != lastCell {
						acc[cell]++
						lastCell = cell
					}
				}
				sx, sy = -sx, -sy
			}
		}
	}

	if len(xs) == 0 {
		return nil, nil
	}

	threshold := int(p.Param2)
	centers := make([]houghCenter, 0)
	for ay := 1; ay <= arows; ay++ {
		for ax := 1; ax <= acols; ax++ {
			cell := ay*stride + ax
			v := acc[cell]
			if v > threshold &&
				v > acc[cell-1] && v >= acc[cell+1] &&
				v > acc[cell-stride] && v >= acc[cell+stride] {
				centers = append(centers, houghCenter{cell: cell, votes: v})
			}
		}
	}
	if len(centers) == 0 {
		return nil, nil
	}

	sort.Slice(centers, func(i, j int) bool {
		if centers[i].votes != centers[j].votes {
			return centers[i].votes > centers[j].votes
		}
		return centers[i].cell < centers[j].cell
	})

	minDist := math.Max(p.MinDist, dp)
	minDist2 := minDist * minDist
	minRadius2 := float64(minRadius) * float64(minRadius)
	maxRadius2 := float64(maxRadius) * float64(maxRadius)

	circles := make([]Circle, 0)
	band := math.Max(3, 2*dp)
	dist := make([]float64, 0, len(xs))

	for _, c := range centers {
		ay := c.cell/stride - 1
		ax := c.cell%stride - 1
		cx, cy := cellCenter(ax, ay, dp)

		tooClose := false
		for _, prev := range circles {
			dx := prev.X - cx
			dy := prev.Y - cy
			if dx*dx+dy*dy < minDist2 {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		dist = dist[:0]
		for i := range xs {
			dx := xs[i] - cx
			dy := ys[i] - cy
			d2 := dx*dx + dy*dy
			if d2 >= minRadius2 && d2 <= maxRadius2 {
				dist = append(dist, math.Sqrt(d2))
			}
		}
		if len(dist) == 0 {
			continue
		}
		sort.Float64s(dist)

		radius, support := densestBand(dist, dp)
		if support <= threshold {
			continue
		}

		circle := Circle{X: cx, Y: cy, Radius: radius, Votes: c.votes}
		refined := refineCircle(circle, xs, ys, band, threshold)
		if refined.Radius >= float64(minRadius) && refined.Radius <= float64(maxRadius) {
			circle = refined
		}
		circles = append(circles, circle)
	}

	return circles, nil
}

// cellCenter maps accumulator cell (ax, ay) to the image point at the
// middle of the cell.
func cellCenter(ax, ay int, dp float64) (x, y float64) {
	return (float64(ax) + 0.5) * dp, (float64(ay) + 0.5) * dp
}

// densestBand slides a window of the given width over sorted distances and
// returns the mean distance and size of the window with the highest
// count-to-radius ratio.
func densestBand(sorted []float64, width float64) (radius float64, count int) {
	var (
		bestScore float64
		sum       float64
		j         int
	)
	for i := range sorted {
		for j < len(sorted) && sorted[j]-sorted[i] <= width {
			sum += sorted[j]
			j++
		}

		n := j - i
		mean := sum / float64(n)
		score := float64(n) / math.Max(mean, 1)
		if score > bestScore {
			bestScore = score
			radius = mean
			count = n
		}

		sum -= sorted[i]
	}
	return radius, count
}
