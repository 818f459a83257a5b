package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/spotlight/cmd/spotlight/internal/demo"
	"github.com/go-drift/spotlight/pkg/config"
	"github.com/go-drift/spotlight/pkg/errors"
	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/logging"
	"github.com/go-drift/spotlight/pkg/metrics"
	"github.com/go-drift/spotlight/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the overlay animation to PNG frames",
		Long: `Render the sample screen with the overlay fading in, holding, being
dismissed by a tap on the highlighted button and fading out. Frames are
recorded on a simulated clock and rasterized in parallel.

Flags:
  --out DIR          Output directory (default: render.output, "frames")
  --size WxH         Frame size in pixels (default: render.width x render.height)
  --fps N            Frames per second (default: render.fps)
  --hold DURATION    How long the visible overlay is held (default: 1s)
  --workers N        Rasterizer goroutines (default: render.workers or CPU count)
  --caption TEXT     Caption text (default: "Tap anywhere")
  --metrics          Print the session metrics after rendering`,
		Usage: "spotlight render [--out DIR] [--size WxH] [--fps N] [--hold DURATION] [--workers N] [--caption TEXT] [--metrics]",
		Run:   runRender,
	})
}

// demoButtonSize is the highlighted button in rendered frames.
var demoButtonSize = graphics.Size{Width: 120, Height: 44}

type renderOptions struct {
	out     string
	width   int
	height  int
	fps     int
	hold    time.Duration
	workers int
	caption string
	metrics bool
}

func parseRenderArgs(args []string, defaults config.RenderConfig) (renderOptions, error) {
	opts := renderOptions{
		out:     defaults.Output,
		width:   defaults.Width,
		height:  defaults.Height,
		fps:     defaults.FPS,
		hold:    time.Second,
		workers: defaults.Workers,
	}
	if opts.workers == 0 {
		opts.workers = runtime.NumCPU()
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--metrics" {
			opts.metrics = true
			continue
		}
		value, err := flagValue(args, &i)
		if err != nil {
			return opts, err
		}
		switch arg {
		case "--out":
			opts.out = value
		case "--size":
			w, h, ok := strings.Cut(value, "x")
			width, errW := strconv.Atoi(w)
			height, errH := strconv.Atoi(h)
			if !ok || errW != nil || errH != nil || width <= 0 || height <= 0 {
				return opts, fmt.Errorf("--size must look like 375x667 (got %q)", value)
			}
			opts.width, opts.height = width, height
		case "--fps":
			fps, err := strconv.Atoi(value)
			if err != nil || fps <= 0 {
				return opts, fmt.Errorf("--fps must be a positive integer (got %q)", value)
			}
			opts.fps = fps
		case "--hold":
			hold, err := time.ParseDuration(value)
			if err != nil || hold < 0 {
				return opts, fmt.Errorf("--hold must be a duration such as 1s (got %q)", value)
			}
			opts.hold = hold
		case "--workers":
			workers, err := strconv.Atoi(value)
			if err != nil || workers <= 0 {
				return opts, fmt.Errorf("--workers must be a positive integer (got %q)", value)
			}
			opts.workers = workers
		case "--caption":
			opts.caption = value
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return opts, nil
}

// flagValue returns the value following the flag at args[*i] and advances i.
func flagValue(args []string, i *int) (string, error) {
	name := args[*i]
	if !strings.HasPrefix(name, "--") {
		return "", fmt.Errorf("unexpected argument %q", name)
	}
	if *i+1 >= len(args) {
		return "", fmt.Errorf("%s requires a value", name)
	}
	*i++
	return args[*i], nil
}

func runRender(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := parseRenderArgs(args, cfg.Render)
	if err != nil {
		return err
	}

	fonts, err := raster.NewFonts()
	if err != nil {
		return fmt.Errorf("failed to load fonts: %w", err)
	}
	defer fonts.Close()

	size := graphics.Size{Width: float64(opts.width), Height: float64(opts.height)}
	scene := demo.NewScene(size, demoButtonSize, fonts)
	if opts.caption != "" {
		scene.Caption = opts.caption
	}

	overlay := cfg.Options
	overlay.Measurer = fonts
	overlay.Logger = logging.Logger()
	overlay.Metrics = metrics.Default

	frames, err := scene.Record(overlay, opts.fps, opts.hold)
	if err != nil {
		return errors.Report(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	paths, err := demo.WriteFrames(ctx, frames, opts.width, opts.height, opts.workers, opts.out)
	if err != nil {
		return fmt.Errorf("failed to write frames: %w", errors.Report(err))
	}
	logging.Logger().Info("frames written", "count", len(paths), "workers", opts.workers, "elapsed", time.Since(start))
	fmt.Fprintf(stdout, "Wrote %d frames to %s\n", len(paths), opts.out)

	if opts.metrics {
		fmt.Fprintln(stdout)
		if err := metrics.WriteText(stdout, metrics.Registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
