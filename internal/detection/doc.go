// Package detection finds circular apertures in images using the circular
// Hough transform.
//
// The transform itself is hidden behind the Detector interface so that the
// surrounding pipeline does not care which computer-vision library supplies
// it. Two backends exist:
//
//   - "opencv": OpenCV's HoughCircles (HOUGH_GRADIENT) via gocv. Compiled in
//     only with the "opencv" build tag, since it needs the native library.
//   - "hough": a pure-Go HOUGH_GRADIENT implementation, always available.
//
// # Pipeline
//
// Find and FindAll prepare the input the same way for every backend:
//
//  1. Grayscale: BT.601 luminance (0.299*R + 0.587*G + 0.114*B)
//  2. Smoothing: 5x5 median blur, which suppresses the pixel noise of printed
//     artwork before edge detection
//  3. Transform: Detector.Detect on the smoothed plane
//
// Detectors return every candidate in their own ranking order. Find keeps
// only the first; a nil circle means nothing matched and is not an error.
//
// # HOUGH_GRADIENT
//
// The pure-Go backend follows the same steps as OpenCV:
//
//  1. Canny edges with high threshold Param1 and low threshold Param1/2
//  2. Each edge pixel votes along its gradient line, in both directions, for
//     every radius in [MinRadius, MaxRadius]. The accumulator is DP times
//     coarser than the image.
//  3. Cells above Param2 votes that are local maxima become center
//     candidates, ordered by votes.
//  4. Each candidate further than MinDist from the accepted circles gets a
//     radius from the densest band of edge-point distances; it is accepted
//     when that band holds more than Param2 points.
//
// # Coordinate System
//
// Centers and radii are float64 pixels. The origin is the top-left corner of
// the image bounds, X grows rightward, Y grows downward.
package detection
