package detection

import (
	"fmt"
	"sort"
)

// Lookup returns the detector registered under name.
//
// An empty name selects the default backend: OpenCV when the binary was
// built with the "opencv" tag, the pure-Go transform otherwise.
func Lookup(name string) (Detector, error) {
	available := Available()
	if name == "" {
		return available[0], nil
	}
	for _, d := range available {
		if d.Name() == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown detector %q (available: %v)", name, Names())
}

// Available lists the compiled-in detectors, preferred first.
func Available() []Detector {
	return append(platformDetectors(), HoughGradient{})
}

// Names returns the sorted names of the compiled-in detectors.
func Names() []string {
	available := Available()
	names := make([]string, len(available))
	for i, d := range available {
		names[i] = d.Name()
	}
	sort.Strings(names)
	return names
}
