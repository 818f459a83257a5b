package testing

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/go-drift/spotlight/pkg/animation"
)

// UseFakeClock installs a fake animation clock and registers a cleanup that
// restores the previous one.
//
//	clock := spottest.UseFakeClock(t.Cleanup)
func UseFakeClock(cleanup func(func())) *clockwork.FakeClock {
	fc := clockwork.NewFakeClock()
	prev := animation.SetClock(fc)
	cleanup(func() { animation.SetClock(prev) })
	return fc
}

// Pump advances clock by d and steps every active ticker once.
func Pump(clock *clockwork.FakeClock, d time.Duration) {
	clock.Advance(d)
	animation.StepTickers()
}
