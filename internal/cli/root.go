// Package cli implements the detect-lens command line.
//
// The root command is the whole tool: it takes one image path, runs circle
// detection, and prints the lens position. Flags are bound into a viper
// instance so the same keys can come from a --config file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/palide/detect-lens/internal/config"
	"github.com/palide/detect-lens/internal/detection"
	"github.com/palide/detect-lens/internal/logger"
)

// Version, Commit, and Date are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates the detect-lens command with all flags registered.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var configFile string

	cmd := &cobra.Command{
		Use:   "detect-lens <image>",
		Short: "Locate the lens circle in a camera artwork",
		Long: `detect-lens finds the circular lens aperture in a photographed artwork
with a circular Hough transform and prints its center and radius in pixels
and as percentages of the image size, ready to use as layout coordinates.

Exit codes:
  0   circle found
  1   image unreadable, or the overlay could not be written
  2   no circle detected
  64  invalid command line or config file`,
		Example: `  detect-lens polaroid.jpg
  detect-lens polaroid.jpg --min-radius 90 --max-radius 200 --debug-overlay overlay.png
  detect-lens polaroid.jpg --config detect.yaml --json`,

		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError(fmt.Errorf("expected exactly one image path, got %d arguments", len(args)))
			}
			return nil
		},

		// Errors are printed once by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return usageError(fmt.Errorf("failed to read config file: %w", err))
				}
			}

			cfg, err := config.FromViper(v, args[0])
			if err != nil {
				return err
			}

			log := logger.New(cfg.Verbose, zapcore.AddSync(cmd.ErrOrStderr()))
			defer func() { _ = log.Sync() }()

			ctx := logger.ContextWithLogger(cmd.Context(), log)
			return run(ctx, cfg, cmd.OutOrStdout())
		},
	}

	d := config.Default()
	flags := cmd.Flags()
	flags.Int(config.KeyMinRadius, d.Detection.MinRadius, "Minimum circle radius (px)")
	flags.Int(config.KeyMaxRadius, d.Detection.MaxRadius, "Maximum circle radius (px)")
	flags.Int(config.KeyMinDist, int(d.Detection.MinDist), "Minimum distance between detected circle centers (px)")
	flags.Float64(config.KeyDP, d.Detection.DP, "Inverse ratio of accumulator resolution to image resolution")
	flags.Float64(config.KeyParam1, d.Detection.Param1, "Higher threshold for the Canny edge detector")
	flags.Float64(config.KeyParam2, d.Detection.Param2, "Accumulator threshold for circle detection")
	flags.String(config.KeyDebugOverlay, "", "Optional path to save an overlay image with the detected circle")
	flags.String(config.KeyDetector, "", fmt.Sprintf("Detector backend %v (default: best available)", detection.Names()))
	flags.String(config.KeyCircleColor, config.DefaultCircleColor, "Overlay circle color (hex)")
	flags.String(config.KeyCenterColor, config.DefaultCenterColor, "Overlay center marker color (hex)")
	flags.Bool(config.KeyOverlayLabel, false, "Label the overlay with the circle center and radius")
	flags.Bool(config.KeyJSON, false, "Print the result as JSON")
	flags.BoolP(config.KeyVerbose, "v", false, "Enable debug logging on stderr")
	flags.StringVar(&configFile, "config", "", "Config file (YAML, JSON or TOML) with any of the flag keys")

	// Flags set on the command line override the config file.
	if err := v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("binding flags: %v", err))
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	return cmd
}
