package detection

import (
	"errors"
	"fmt"
	"image"

	"github.com/palide/detect-lens/internal/imaging"
)

// MedianKernel is the side length of the median blur applied before
// edge detection.
const MedianKernel = 5

// ErrInvalidParams is returned for parameter sets no detector can run with.
var ErrInvalidParams = errors.New("invalid detection parameters")

// Params configures one run of the circular Hough transform.
type Params struct {
	// DP is the inverse ratio of accumulator resolution to image resolution.
	// 1 means the same resolution, 2 means half as many cells per side.
	DP float64 `json:"dp"`

	// MinDist is the minimum distance between the centers of two
	// reported circles.
	MinDist float64 `json:"min_dist"`

	// Param1 is the high threshold of the Canny edge detector. The low
	// threshold is half of it.
	Param1 float64 `json:"param1"`

	// Param2 is the accumulator vote threshold for center candidates.
	Param2 float64 `json:"param2"`

	// MinRadius and MaxRadius bound the radius in pixels. MaxRadius 0 means
	// bounded only by the image size.
	MinRadius int `json:"min_radius"`
	MaxRadius int `json:"max_radius"`
}

// DefaultParams returns the parameters tuned for lens apertures in camera
// artwork around 1000px wide.
func DefaultParams() Params {
	return Params{
		DP:        1.2,
		MinDist:   200,
		Param1:    80,
		Param2:    30,
		MinRadius: 120,
		MaxRadius: 260,
	}
}

// Validate reports parameter values that make the transform undefined.
//
// A MaxRadius below MinRadius is allowed: it is a valid request that simply
// matches nothing.
func (p Params) Validate() error {
	switch {
	case p.DP <= 0:
		return fmt.Errorf("%w: dp must be positive, got %g", ErrInvalidParams, p.DP)
	case p.MinDist <= 0:
		return fmt.Errorf("%w: min-dist must be positive, got %g", ErrInvalidParams, p.MinDist)
	case p.Param1 <= 0:
		return fmt.Errorf("%w: param1 must be positive, got %g", ErrInvalidParams, p.Param1)
	case p.Param2 <= 0:
		return fmt.Errorf("%w: param2 must be positive, got %g", ErrInvalidParams, p.Param2)
	case p.MinRadius < 0:
		return fmt.Errorf("%w: min-radius must not be negative, got %d", ErrInvalidParams, p.MinRadius)
	case p.MaxRadius < 0:
		return fmt.Errorf("%w: max-radius must not be negative, got %d", ErrInvalidParams, p.MaxRadius)
	}
	return nil
}

// Circle is a detected circle in pixel units.
type Circle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`

	// Votes is the accumulator count of the center cell, when the backend
	// exposes it. OpenCV does not, so it is 0 there.
	Votes int `json:"votes,omitempty"`
}

// Diameter returns 2 × Radius.
func (c Circle) Diameter() float64 {
	return 2 * c.Radius
}

// Detector is the circular Hough transform capability.
//
// Detect receives a grayscale, already smoothed plane and returns every
// candidate circle in the backend's ranking order. An empty result is a
// normal outcome, not an error.
type Detector interface {
	Name() string
	Detect(gray *image.Gray, p Params) ([]Circle, error)
}

// FindAll smooths img and returns every circle d reports for p. Coordinates
// are relative to the top-left corner of img's bounds.
func FindAll(d Detector, img image.Image, p Params) ([]Circle, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	gray := imaging.Smooth(img, MedianKernel)

	circles, err := d.Detect(gray, p)
	if err != nil {
		return nil, fmt.Errorf("%s detector: %w", d.Name(), err)
	}
	return circles, nil
}

// Find returns the first circle d reports for img, or nil when there is none.
//
// Only the first candidate is consumed even when the detector returns
// several; there is no further disambiguation.
func Find(d Detector, img image.Image, p Params) (*Circle, error) {
	circles, err := FindAll(d, img, p)
	if err != nil {
		return nil, err
	}
	if len(circles) == 0 {
		return nil, nil
	}
	first := circles[0]
	return &first, nil
}
