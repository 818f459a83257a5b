package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

// UpdateSnapshotsEnv rewrites golden files instead of comparing when set to 1.
const UpdateSnapshotsEnv = "SPOTLIGHT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures a controller's session state and display operations.
// Session ids are left out so snapshots are stable across runs.
type Snapshot struct {
	Session    *SessionNode `json:"session"`
	DisplayOps []DisplayOp  `json:"displayOps,omitempty"`
}

// SessionNode is the serialized session.
type SessionNode struct {
	Visibility     string       `json:"visibility"`
	Opacity        float64      `json:"opacity"`
	TapDetected    bool         `json:"tapDetected,omitempty"`
	Regions        []RegionNode `json:"regions"`
	Caption        *LabelNode   `json:"caption,omitempty"`
	DismissControl *LabelNode   `json:"dismissControl,omitempty"`
}

// RegionNode is a serialized region as [left, top, width, height] rects.
type RegionNode struct {
	Frame    [4]float64 `json:"frame"`
	Expanded [4]float64 `json:"expanded"`
}

// LabelNode is a serialized caption or dismiss control.
type LabelNode struct {
	Text  string     `json:"text"`
	Frame [4]float64 `json:"frame"`
}

// CaptureSnapshot records ctrl's current session and paints it through a
// RecordingCanvas. A controller without a session yields a nil Session
// and no ops.
func CaptureSnapshot(ctrl *spotlight.Controller, size graphics.Size) *Snapshot {
	snap := &Snapshot{}
	s := ctrl.Session()
	if s == nil {
		return snap
	}

	node := &SessionNode{
		Visibility:  s.Visibility.String(),
		Opacity:     round2(ctrl.Opacity()),
		TapDetected: s.TapDetected,
		Regions:     make([]RegionNode, 0, len(s.Regions)),
	}
	for _, r := range s.Regions {
		node.Regions = append(node.Regions, RegionNode{
			Frame:    ltwh(r.Frame),
			Expanded: ltwh(r.ExpandedFrame),
		})
	}
	if s.Caption != nil {
		node.Caption = &LabelNode{Text: s.Caption.Text, Frame: ltwh(s.Caption.Frame)}
	}
	if s.DismissControl != nil {
		node.DismissControl = &LabelNode{Text: s.DismissControl.Label, Frame: ltwh(s.DismissControl.Frame)}
	}
	snap.Session = node

	canvas := NewRecordingCanvas(size)
	ctrl.Paint(canvas)
	snap.DisplayOps = canvas.Ops()
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// SPOTLIGHT_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func ltwh(r graphics.Rect) [4]float64 {
	return [4]float64{round2(r.Left), round2(r.Top), round2(r.Width()), round2(r.Height())}
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
