// Package report turns a detected circle into layout coordinates and prints
// them.
//
// Percentages are relative to the image dimensions so they can be used as
// CSS positions: Left and Top locate the circle center (for elements anchored
// with translate(-50%, -50%)), Width is the diameter as a share of the image
// width.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/palide/detect-lens/internal/detection"
)

// UsageHint is the fixed last line of the text report.
const UsageHint = "Use left/top for translate(-50%, -50%) anchors; width for lens-video-mask width."

// Percentages locates a circle relative to the image size.
type Percentages struct {
	Left  float64 `json:"left"`
	Top   float64 `json:"top"`
	Width float64 `json:"width"`
}

// Compute converts a circle in a width×height image into percentages:
//
//	Left  = X / width × 100
//	Top   = Y / height × 100
//	Width = 2 × Radius / width × 100
func Compute(c detection.Circle, width, height int) Percentages {
	w := float64(width)
	h := float64(height)
	return Percentages{
		Left:  c.X / w * 100,
		Top:   c.Y / h * 100,
		Width: c.Diameter() / w * 100,
	}
}

// Size is an image size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Result is everything one successful run reports.
type Result struct {
	Image    Size             `json:"image"`
	Circle   detection.Circle `json:"circle"`
	Percents Percentages      `json:"percents"`

	// Detector is the name of the backend that found the circle.
	Detector string `json:"detector,omitempty"`

	// OverlayPath is set when a debug overlay was written.
	OverlayPath string `json:"overlay_path,omitempty"`
}

// NewResult builds the Result for circle c in a width×height image.
func NewResult(c detection.Circle, width, height int) Result {
	return Result{
		Image:    Size{Width: width, Height: height},
		Circle:   c,
		Percents: Compute(c, width, height),
	}
}

// WriteText prints r in the human-readable layout:
//
//	Image size: 1200x800px
//	Circle px: center=(600.00, 400.00), radius=180.00
//	Percents: left=50.00%, top=50.00%, width=30.00%
//	Use left/top for translate(-50%, -50%) anchors; width for lens-video-mask width.
//
// followed by "Saved overlay to: <path>" when OverlayPath is set.
func WriteText(w io.Writer, r Result) error {
	lines := []string{
		fmt.Sprintf("Image size: %dx%dpx", r.Image.Width, r.Image.Height),
		fmt.Sprintf("Circle px: center=(%.2f, %.2f), radius=%.2f", r.Circle.X, r.Circle.Y, r.Circle.Radius),
		fmt.Sprintf("Percents: left=%.2f%%, top=%.2f%%, width=%.2f%%", r.Percents.Left, r.Percents.Top, r.Percents.Width),
		UsageHint,
	}
	if r.OverlayPath != "" {
		lines = append(lines, "Saved overlay to: "+r.OverlayPath)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON prints r as an indented JSON document.
func WriteJSON(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
