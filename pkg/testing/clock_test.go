package testing

import (
	"testing"
	"time"

	"github.com/go-drift/spotlight/pkg/animation"
	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

func TestUseFakeClock_RestoresPrevious(t *testing.T) {
	before := animation.Now()

	t.Run("fake", func(t *testing.T) {
		clock := UseFakeClock(t.Cleanup)
		start := animation.Now()
		clock.Advance(time.Hour)
		if got := animation.Now().Sub(start); got != time.Hour {
			t.Errorf("expected animation time to follow the fake clock, got %v", got)
		}
	})

	// The real clock is back: time moves forward from before, not by an hour.
	if got := animation.Now().Sub(before); got < 0 || got >= time.Hour {
		t.Errorf("expected the real clock after cleanup, got offset %v", got)
	}
}

func TestPump_DrivesFade(t *testing.T) {
	clock := UseFakeClock(t.Cleanup)
	ctrl := spotlight.NewController(NewFakeSurface(200, 200), spotlight.DefaultOptions())
	if err := ctrl.Highlight([]spotlight.Target{NewFakeTarget(graphics.RectFromLTWH(20, 80, 40, 40))}, ""); err != nil {
		t.Fatal(err)
	}
	if ctrl.Visibility() != spotlight.Animating {
		t.Fatalf("expected animating, got %v", ctrl.Visibility())
	}

	Pump(clock, 100*time.Millisecond)
	if op := ctrl.Opacity(); op <= 0 || op >= 1 {
		t.Errorf("expected partial opacity mid-fade, got %v", op)
	}

	Pump(clock, 250*time.Millisecond)
	if ctrl.Visibility() != spotlight.Visible {
		t.Errorf("expected visible after the full fade, got %v", ctrl.Visibility())
	}
}
