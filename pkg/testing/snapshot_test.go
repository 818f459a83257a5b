package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

var screenSize = graphics.Size{Width: 375, Height: 667}

// presented returns a visible controller highlighting a target at frame.
func presented(t *testing.T, frame graphics.Rect, caption string) *spotlight.Controller {
	t.Helper()
	opts := spotlight.DefaultOptions()
	opts.AnimationDuration = 0
	ctrl := spotlight.NewController(NewFakeSurface(screenSize.Width, screenSize.Height), opts)
	if err := ctrl.Highlight([]spotlight.Target{NewFakeTarget(frame)}, caption); err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	return ctrl
}

func TestCaptureSnapshot_NoSession(t *testing.T) {
	ctrl := spotlight.NewController(NewFakeSurface(100, 100), spotlight.DefaultOptions())
	snap := CaptureSnapshot(ctrl, graphics.Size{Width: 100, Height: 100})
	if snap.Session != nil {
		t.Errorf("expected no session, got %+v", snap.Session)
	}
	if len(snap.DisplayOps) != 0 {
		t.Errorf("expected no ops, got %d", len(snap.DisplayOps))
	}
}

func TestCaptureSnapshot_Session(t *testing.T) {
	ctrl := presented(t, graphics.RectFromLTWH(20, 300, 100, 44), "Tap anywhere")
	snap := CaptureSnapshot(ctrl, screenSize)

	s := snap.Session
	if s == nil {
		t.Fatal("expected a session")
	}
	if s.Visibility != "visible" || s.Opacity != 1 {
		t.Errorf("expected visible at full opacity, got %s at %v", s.Visibility, s.Opacity)
	}
	if len(s.Regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(s.Regions))
	}
	if got, want := s.Regions[0].Expanded, [4]float64{10, 290, 120, 64}; got != want {
		t.Errorf("expected expanded frame %v, got %v", want, got)
	}
	if s.Caption == nil || s.Caption.Frame != [4]float64{20, 268, 120, 24} {
		t.Errorf("unexpected caption %+v", s.Caption)
	}
	if s.DismissControl == nil || s.DismissControl.Text != "Done" || s.DismissControl.Frame != [4]float64{299, 28, 68, 44} {
		t.Errorf("unexpected dismiss control %+v", s.DismissControl)
	}
	if len(snap.DisplayOps) == 0 || snap.DisplayOps[0].Op != "saveLayerAlpha" {
		t.Errorf("expected ops to start with saveLayerAlpha, got %v", snap.DisplayOps)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	ctrl := presented(t, graphics.RectFromLTWH(50, 50, 50, 50), "")

	a := CaptureSnapshot(ctrl, screenSize)
	b := CaptureSnapshot(ctrl, screenSize)

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	a := CaptureSnapshot(presented(t, graphics.RectFromLTWH(50, 50, 50, 50), ""), screenSize)
	b := CaptureSnapshot(presented(t, graphics.RectFromLTWH(50, 50, 100, 50), ""), screenSize)

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := CaptureSnapshot(presented(t, graphics.RectFromLTWH(80, 40, 80, 40), "Hello"), screenSize)

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "overlay.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	// MatchesFile should pass now
	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := CaptureSnapshot(presented(t, graphics.RectFromLTWH(50, 50, 50, 50), ""), screenSize)

	// Use a recorder to intercept the Fatal
	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, "/nonexistent/path/snap.json")

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	first := CaptureSnapshot(presented(t, graphics.RectFromLTWH(50, 50, 50, 50), "One"), screenSize)

	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	second := CaptureSnapshot(presented(t, graphics.RectFromLTWH(200, 400, 60, 30), "Two"), screenSize)

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	snap := CaptureSnapshot(presented(t, graphics.RectFromLTWH(60, 30, 60, 30), ""), screenSize)

	dir := t.TempDir()
	path := filepath.Join(dir, "update.snapshot.json")

	t.Setenv(UpdateSnapshotsEnv, "1")
	snap.MatchesFile(t, path)

	// File should now exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
