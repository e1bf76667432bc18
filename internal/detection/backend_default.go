//go:build !opencv

package detection

// platformDetectors returns the native backends. Without the "opencv" build
// tag there are none.
func platformDetectors() []Detector {
	return nil
}
