//go:build opencv

package detection

// platformDetectors returns the native backends, preferred over the pure-Go
// transform.
func platformDetectors() []Detector {
	return []Detector{OpenCV{}}
}
