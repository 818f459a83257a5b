package demo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/spotlight/pkg/animation"
	"github.com/go-drift/spotlight/pkg/errors"
	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/platform"
	"github.com/go-drift/spotlight/pkg/raster"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

// maxFrames bounds a recording in case a fade never settles.
const maxFrames = 10_000

// Record plays the demo on a fake clock and snapshots one frame per
// 1/fps: the fade in, hold of the visible overlay, a tap on the button
// and the fade out. The first frame is taken before any time passes and
// the last after the overlay is hidden.
//
// Record swaps the animation clock for the duration of the call, so it
// must not run concurrently with other animations.
func (s *Scene) Record(opts spotlight.Options, fps int, hold time.Duration) ([]*graphics.DisplayList, error) {
	if fps <= 0 {
		return nil, errors.InvalidArgument("demo.Record", fmt.Errorf("fps must be positive, got %d", fps))
	}
	clock := clockwork.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	loop := platform.NewLoop()
	opts.Dispatch = func(callback func()) bool {
		loop.Post(callback)
		return true
	}

	ctrl, err := s.Present(opts)
	if err != nil {
		return nil, err
	}

	step := time.Second / time.Duration(fps)
	frames := []*graphics.DisplayList{s.Snapshot()}
	advance := func() {
		clock.Advance(step)
		animation.StepTickers()
		loop.RunPending()
		frames = append(frames, s.Snapshot())
	}

	for ctrl.Visibility() == spotlight.Animating && len(frames) < maxFrames {
		advance()
	}
	for range int(hold / step) {
		advance()
	}

	center := s.Button.Frame.Center()
	s.Screen.PointerDown(center)
	s.Screen.PointerUp(center)
	loop.RunPending()

	tapped := len(frames)
	for ctrl.Visibility() != spotlight.Hidden && len(frames) < maxFrames {
		advance()
	}
	if ctrl.Visibility() != spotlight.Hidden {
		return nil, errors.InvalidState("demo.Record",
			fmt.Errorf("overlay still %s after %d frames", ctrl.Visibility(), len(frames)))
	}
	// An instant fade out hides the overlay without advancing.
	if len(frames) == tapped {
		frames = append(frames, s.Snapshot())
	}
	return frames, nil
}

// WriteFrames rasterizes frames into dir as frame_0000.png, frame_0001.png
// and so on, using up to workers goroutines. Each worker owns its own font
// set. It returns the written paths in frame order.
func WriteFrames(ctx context.Context, frames []*graphics.DisplayList, width, height, workers int, dir string) ([]string, error) {
	if workers <= 0 {
		workers = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New("demo.WriteFrames", errors.KindRender, err)
	}

	pool := make(chan *raster.Fonts, workers)
	defer func() {
		close(pool)
		for fonts := range pool {
			fonts.Close()
		}
	}()
	for range workers {
		fonts, err := raster.NewFonts()
		if err != nil {
			return nil, errors.New("demo.WriteFrames", errors.KindRender, err)
		}
		pool <- fonts
	}

	paths := make([]string, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, frame := range frames {
		paths[i] = filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fonts := <-pool
			defer func() { pool <- fonts }()
			return writeFrame(paths[i], frame, width, height, fonts)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFrame(path string, frame *graphics.DisplayList, width, height int, fonts *raster.Fonts) error {
	canvas := raster.NewCanvas(width, height, fonts)
	defer canvas.Close()
	frame.Paint(canvas)

	f, err := os.Create(path)
	if err != nil {
		return errors.New("demo.writeFrame", errors.KindRender, err)
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return errors.New("demo.writeFrame", errors.KindRender, fmt.Errorf("encode %s: %w", filepath.Base(path), err))
	}
	if err := f.Close(); err != nil {
		return errors.New("demo.writeFrame", errors.KindRender, err)
	}
	return nil
}
