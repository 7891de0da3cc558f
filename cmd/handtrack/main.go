package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/akamensky/argparse"
	"github.com/lmittmann/tint"

	"github.com/ayusman/handtrack/internal/app"
)

// options is the parsed command line.
type options struct {
	config  app.Config
	verbose bool
}

func parseArgs(args []string) (*options, error) {
	def := app.DefaultConfig()

	parser := argparse.NewParser("handtrack", "Live hand tracking from a webcam with on-screen FPS")
	camera := parser.Int("c", "camera", &argparse.Options{Help: "Camera device index", Default: def.CameraID})
	static := parser.Flag("s", "static", &argparse.Options{Help: "Treat every frame as an independent image instead of tracking across frames", Default: false})
	maxHands := parser.Int("n", "max-hands", &argparse.Options{Help: "Maximum number of hands to detect", Default: def.Detector.MaxHands})
	detectionConf := parser.Float("", "detection-confidence", &argparse.Options{Help: "Minimum hand detection confidence (0-1)", Default: def.Detector.MinConfidence})
	trackingConf := parser.Float("", "tracking-confidence", &argparse.Options{Help: "Minimum landmark tracking confidence (0-1)", Default: def.Detector.MinTrackingConf})
	title := parser.String("t", "title", &argparse.Options{Help: "Window title", Default: def.WindowTitle})
	keepOpen := parser.Flag("", "keep-open-on-close", &argparse.Options{Help: "Keep running when the window is closed; only Escape exits", Default: false})
	verbose := parser.Flag("v", "verbose", &argparse.Options{Help: "Enable debug logging", Default: false})

	if err := parser.Parse(args); err != nil {
		return nil, errors.New(parser.Usage(err))
	}

	cfg := def
	cfg.CameraID = *camera
	cfg.Detector.StaticMode = *static
	cfg.Detector.MaxHands = *maxHands
	cfg.Detector.MinConfidence = *detectionConf
	cfg.Detector.MinTrackingConf = *trackingConf
	cfg.WindowTitle = *title
	cfg.ExitOnWindowClose = !*keepOpen

	if err := cfg.Detector.Validate(); err != nil {
		return nil, err
	}

	return &options{config: cfg, verbose: *verbose}, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	)
}

func main() {
	opts, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(opts.verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, opts.config, logger))
}

func run(ctx context.Context, cfg app.Config, logger *slog.Logger) int {
	a, err := app.New(cfg, app.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to initialize", "err", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Debug("Error closing detector", "err", err)
		}
	}()

	stats, err := a.Run(ctx)
	if err != nil {
		logger.Error("Hand tracking failed", "err", err, "frames", stats.Frames)
		return 1
	}

	logger.Info("Done", "frames", stats.Frames, "frames_with_hands", stats.HandFrames)
	return 0
}
