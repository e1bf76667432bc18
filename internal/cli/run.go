package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/palide/detect-lens/internal/config"
	"github.com/palide/detect-lens/internal/detection"
	"github.com/palide/detect-lens/internal/imaging"
	"github.com/palide/detect-lens/internal/logger"
	"github.com/palide/detect-lens/internal/report"
)

// run executes the pipeline: load, detect, write the overlay if requested,
// then print the report. Nothing reaches stdout unless every step succeeded.
func run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	ctx = logger.With(ctx, zap.String("image", cfg.ImagePath))
	log := logger.FromContext(ctx)

	img, err := imaging.Load(cfg.ImagePath)
	if err != nil {
		return err
	}
	info := imaging.Describe(cfg.ImagePath, img)
	log.Debug("image loaded",
		zap.Int("width", info.Width),
		zap.Int("height", info.Height),
		zap.String("format", info.Format))

	detector, err := detection.Lookup(cfg.Detector)
	if err != nil {
		return usageError(err)
	}

	circles, err := detection.FindAll(detector, img, cfg.Detection)
	if err != nil {
		return fmt.Errorf("circle detection failed: %w", err)
	}
	log.Debug("detection finished",
		zap.String("detector", detector.Name()),
		zap.Any("params", cfg.Detection),
		zap.Int("candidates", len(circles)))

	if len(circles) == 0 {
		return ErrNoCircle
	}
	if len(circles) > 1 {
		log.Debug("several candidates, using the first", zap.Any("candidates", circles))
	}
	circle := circles[0]

	result := report.NewResult(circle, info.Width, info.Height)
	result.Detector = detector.Name()

	if cfg.OverlayPath != "" {
		overlay := imaging.DrawOverlay(img, circle.X, circle.Y, circle.Radius, cfg.Overlay)
		if err := imaging.SaveOverlay(overlay, cfg.OverlayPath); err != nil {
			return err
		}
		log.Debug("overlay written",
			zap.String("path", cfg.OverlayPath),
			zap.String("circle_color", imaging.HexColor(cfg.Overlay.CircleColor)),
			zap.String("center_color", imaging.HexColor(cfg.Overlay.CenterColor)))
		result.OverlayPath = cfg.OverlayPath
	}

	if cfg.JSON {
		return report.WriteJSON(stdout, result)
	}
	return report.WriteText(stdout, result)
}
