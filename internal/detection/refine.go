package detection

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// refineIterations bounds how many fit/reselect rounds refineCircle runs.
const refineIterations = 3

// refineCircle moves an accumulator-resolution circle onto the edge points
// that support it, using an algebraic least-squares circle fit.
//
// Each round keeps the points within band of the current circle and solves
//
//	x² + y² + D·x + E·y + F = 0
//
// for D, E, F. Coordinates are taken relative to the current center to keep
// the system well conditioned. The fit is discarded when it needs fewer
// than minPoints points, fails to solve, or wanders further than half the
// radius from where it started.
func refineCircle(c Circle, xs, ys []float64, band float64, minPoints int) Circle {
	start := c

	for iter := 0; iter < refineIterations; iter++ {
		var sel []int
		for i := range xs {
			d := math.Hypot(xs[i]-c.X, ys[i]-c.Y)
			if math.Abs(d-c.Radius) <= band {
				sel = append(sel, i)
			}
		}
		if len(sel) < max(minPoints, 3) {
			return c
		}

		A := mat.NewDense(len(sel), 3, nil)
		B := mat.NewVecDense(len(sel), nil)
		for row, i := range sel {
			u := xs[i] - c.X
			v := ys[i] - c.Y
			A.Set(row, 0, u)
			A.Set(row, 1, v)
			A.Set(row, 2, 1)
			B.SetVec(row, -(u*u + v*v))
		}

		// Solve using QR decomposition
		var qr mat.QR
		qr.Factorize(A)

		var params mat.VecDense
		if err := qr.SolveVecTo(&params, false, B); err != nil {
			return c
		}

		uc := -params.AtVec(0) / 2
		vc := -params.AtVec(1) / 2
		r2 := uc*uc + vc*vc - params.AtVec(2)
		if r2 <= 0 || math.IsNaN(r2) {
			return c
		}

		next := Circle{
			X:      c.X + uc,
			Y:      c.Y + vc,
			Radius: math.Sqrt(r2),
			Votes:  c.Votes,
		}
		if math.Hypot(next.X-start.X, next.Y-start.Y) > start.Radius/2 {
			return c
		}

		moved := math.Hypot(next.X-c.X, next.Y-c.Y) + math.Abs(next.Radius-c.Radius)
		c = next
		if moved < 0.01 {
			break
		}
	}

	return c
}
