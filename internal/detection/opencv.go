//go:build opencv

package detection

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// OpenCV runs cv::HoughCircles with the HOUGH_GRADIENT method through gocv.
//
// Build with -tags opencv; the OpenCV 4 libraries must be installed.
type OpenCV struct{}

// Name implements Detector.
func (OpenCV) Name() string { return "opencv" }

// Detect implements Detector.
func (OpenCV) Detect(gray *image.Gray, p Params) ([]Circle, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.MaxRadius > 0 && p.MaxRadius < p.MinRadius {
		// OpenCV widens such a range instead of matching nothing
		return nil, nil
	}

	src, err := grayToMat(gray)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer src.Close()

	circles := gocv.NewMat()
	defer circles.Close()

	gocv.HoughCirclesWithParams(src, &circles, gocv.HoughGradient,
		p.DP, p.MinDist, p.Param1, p.Param2,
		p.MinRadius, p.MaxRadius)

	if circles.Empty() || circles.Cols() == 0 {
		return nil, nil
	}

	result := make([]Circle, circles.Cols())
	for i := 0; i < circles.Cols(); i++ {
		result[i] = Circle{
			X:      float64(circles.GetFloatAt(0, i*3)),
			Y:      float64(circles.GetFloatAt(0, i*3+1)),
			Radius: float64(circles.GetFloatAt(0, i*3+2)),
		}
	}
	return result, nil
}

// grayToMat copies an 8-bit grayscale plane into a CV_8UC1 Mat.
func grayToMat(gray *image.Gray) (gocv.Mat, error) {
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	pix := gray.Pix
	if gray.Stride != width || len(pix) != width*height {
		pix = make([]byte, width*height)
		for y := 0; y < height; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
			copy(pix[y*width:], row)
		}
	}

	return gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC1, pix)
}
