// Package testing provides fakes and a recording canvas for overlay tests.
//
// # Quick Start
//
//	func TestHighlight(t *testing.T) {
//	    clock := spottest.UseFakeClock(t.Cleanup)
//	    loop := platform.SetupTestDispatch(t.Cleanup)
//	    surface := spottest.NewFakeSurface(375, 667)
//	    button := spottest.NewFakeTarget(graphics.RectFromLTWH(20, 300, 120, 44))
//
//	    ctrl := spotlight.NewController(surface, spotlight.DefaultOptions())
//	    if err := ctrl.Highlight([]spotlight.Target{button}, "Tap anywhere"); err != nil {
//	        t.Fatal(err)
//	    }
//	    spottest.Pump(clock, 350*time.Millisecond)
//
//	    ctrl.HitTest(graphics.Offset{X: 30, Y: 310})
//	    ctrl.PointerUp()
//	    loop.RunPending()
//	    spottest.Pump(clock, 350*time.Millisecond)
//	}
//
// # Painting
//
// [RecordingCanvas] captures drawing as [DisplayOp] values that tests can
// filter and compare:
//
//	canvas := spottest.NewRecordingCanvas(surface.Bounds().Size())
//	ctrl.Paint(canvas)
//	rects := canvas.OpsNamed("drawRect")
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import spottest "github.com/go-drift/spotlight/pkg/testing"
package testing
