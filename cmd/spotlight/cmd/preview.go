package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/spotlight/cmd/spotlight/internal/demo"
	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/logging"
	"github.com/go-drift/spotlight/pkg/metrics"
	"github.com/go-drift/spotlight/pkg/overlay"
	"github.com/go-drift/spotlight/pkg/platform"
	"github.com/go-drift/spotlight/pkg/spotlight"
	"github.com/go-drift/spotlight/pkg/termview"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Try the overlay in the terminal",
		Long: `Show the sample screen in the terminal with the overlay on top.

Click the highlighted button or anywhere inside its feathering to dismiss.
Press space to present again, d to dismiss, q to quit.

Flags:
  --cols N    Screen width in cells (default: 60)
  --rows N    Screen height in cells (default: 20)`,
		Usage: "spotlight preview [--cols N] [--rows N]",
		Run:   runPreview,
	})
}

// previewButtonCells is the button size in terminal cells.
var previewButtonCells = graphics.Size{Width: 12, Height: 2}

func runPreview(args []string) error {
	cols, rows := 60, 20
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value, err := flagValue(args, &i)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer (got %q)", arg, value)
		}
		switch arg {
		case "--cols":
			cols = n
		case "--rows":
			rows = n
		default:
			return fmt.Errorf("unknown flag %q", arg)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// The alternate screen owns the terminal while the preview runs.
	logging.SetLogger(nil)

	loop := platform.NewLoop()
	platform.RegisterDispatch(loop.Post)
	defer platform.RegisterDispatch(nil)

	cell := termview.DefaultCellSize
	measurer := termview.CellMeasurer{}
	scene := demo.NewScene(
		graphics.Size{Width: float64(cols) * cell.Width, Height: float64(rows) * cell.Height},
		graphics.Size{Width: previewButtonCells.Width * cell.Width, Height: previewButtonCells.Height * cell.Height},
		measurer,
	)

	opts := cfg.Options
	opts.Measurer = measurer
	opts.Metrics = metrics.Default

	model := termview.NewModel(scene.Screen, loop, func(*overlay.Screen) (*spotlight.Controller, error) {
		return scene.Present(opts)
	})
	if err := model.Err(); err != nil {
		return err
	}
	return termview.Run(model)
}
