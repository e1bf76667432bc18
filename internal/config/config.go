// Package config holds the settings of one detect-lens invocation.
//
// Values come from command-line flags and, optionally, a config file. Both
// are read through viper using the flag names as keys, so a YAML file such as
//
//	min-radius: 90
//	max-radius: 200
//	param2: 40
//	circle-color: "#ffcc00"
//
// sets the same values as the equivalent flags. Flags given explicitly win
// over the file. A Config is built once and never modified.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/palide/detect-lens/internal/detection"
	"github.com/palide/detect-lens/internal/imaging"
)

// Keys shared by flags and config files.
const (
	KeyMinRadius    = "min-radius"
	KeyMaxRadius    = "max-radius"
	KeyMinDist      = "min-dist"
	KeyDP           = "dp"
	KeyParam1       = "param1"
	KeyParam2       = "param2"
	KeyDebugOverlay = "debug-overlay"
	KeyDetector     = "detector"
	KeyCircleColor  = "circle-color"
	KeyCenterColor  = "center-color"
	KeyOverlayLabel = "overlay-label"
	KeyJSON         = "json"
	KeyVerbose      = "verbose"
)

// Default overlay colors as hex strings.
const (
	DefaultCircleColor = "#00ff00"
	DefaultCenterColor = "#ff0000"
)

// ErrInvalid matches every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config is the immutable configuration of one run.
type Config struct {
	// ImagePath is the input image.
	ImagePath string

	// OverlayPath is where to write the debug overlay. Empty disables it.
	OverlayPath string

	// Detector names the backend; empty selects the default.
	Detector string

	// Detection holds the circular Hough transform parameters.
	Detection detection.Params

	// Overlay controls how the debug overlay is drawn.
	Overlay imaging.OverlayStyle

	// JSON selects the JSON report instead of the text layout.
	JSON bool

	// Verbose enables debug logging.
	Verbose bool
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Detection: detection.DefaultParams(),
		Overlay:   imaging.DefaultOverlayStyle(),
	}
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyMinRadius, d.Detection.MinRadius)
	v.SetDefault(KeyMaxRadius, d.Detection.MaxRadius)
	v.SetDefault(KeyMinDist, int(d.Detection.MinDist))
	v.SetDefault(KeyDP, d.Detection.DP)
	v.SetDefault(KeyParam1, d.Detection.Param1)
	v.SetDefault(KeyParam2, d.Detection.Param2)
	v.SetDefault(KeyDebugOverlay, "")
	v.SetDefault(KeyDetector, "")
	v.SetDefault(KeyCircleColor, DefaultCircleColor)
	v.SetDefault(KeyCenterColor, DefaultCenterColor)
	v.SetDefault(KeyOverlayLabel, false)
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyVerbose, false)
}

// FromViper builds and validates the Config for imagePath from the values
// held by v.
func FromViper(v *viper.Viper, imagePath string) (Config, error) {
	cfg := Default()
	cfg.ImagePath = imagePath
	cfg.OverlayPath = v.GetString(KeyDebugOverlay)
	cfg.Detector = v.GetString(KeyDetector)
	cfg.JSON = v.GetBool(KeyJSON)
	cfg.Verbose = v.GetBool(KeyVerbose)

	cfg.Detection = detection.Params{
		DP:        v.GetFloat64(KeyDP),
		MinDist:   float64(v.GetInt(KeyMinDist)),
		Param1:    v.GetFloat64(KeyParam1),
		Param2:    v.GetFloat64(KeyParam2),
		MinRadius: v.GetInt(KeyMinRadius),
		MaxRadius: v.GetInt(KeyMaxRadius),
	}

	var err error
	if cfg.Overlay.CircleColor, err = imaging.ParseColor(v.GetString(KeyCircleColor)); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, KeyCircleColor, err)
	}
	if cfg.Overlay.CenterColor, err = imaging.ParseColor(v.GetString(KeyCenterColor)); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, KeyCenterColor, err)
	}
	cfg.Overlay.Label = v.GetBool(KeyOverlayLabel)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration before any file is touched.
func (c Config) Validate() error {
	if c.ImagePath == "" {
		return fmt.Errorf("%w: image path is required", ErrInvalid)
	}
	if err := c.Detection.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := detection.Lookup(c.Detector); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
