package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/spotlight/pkg/errors"
	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadOptional_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOptional_OverridesOnlyPresentKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
version: v1.2.0
overlay:
  animation_duration: 500ms
  buffer: 16
  dismiss_label: Close
render:
  width: 800
`)

	cfg, err := LoadOptional(dir)
	require.NoError(t, err)

	assert.Equal(t, "v1.2.0", cfg.Version)
	assert.Equal(t, 500*time.Millisecond, cfg.Overlay.AnimationDuration)
	assert.Equal(t, 16.0, cfg.Overlay.Buffer)
	assert.Equal(t, "Close", cfg.Overlay.DismissLabel)
	assert.Equal(t, 800, cfg.Render.Width)

	// Untouched keys keep their defaults.
	assert.Equal(t, 667, cfg.Render.Height)
	assert.True(t, cfg.Overlay.ShowDismissControl)
	assert.Equal(t, "#CC000000", cfg.Overlay.BackgroundColor)
}

func TestLoadOptional_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "overlay: [unterminated")

	_, err := LoadOptional(dir)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindConfig))
	assert.Contains(t, err.Error(), "failed to parse spotlight.yaml")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
overlay:
  buffer: 16
  show_dismiss_control: true
`)
	t.Setenv("SPOTLIGHT_BUFFER", "4")
	t.Setenv("SPOTLIGHT_SHOW_DISMISS_CONTROL", "false")
	t.Setenv("SPOTLIGHT_ANIMATION_DURATION", "1s")
	t.Setenv("SPOTLIGHT_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.Overlay.Buffer)
	assert.False(t, cfg.Overlay.ShowDismissControl)
	assert.Equal(t, time.Second, cfg.Overlay.AnimationDuration)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "SPOTLIGHT_RENDER_FPS=12\n")
	t.Cleanup(func() { os.Unsetenv("SPOTLIGHT_RENDER_FPS") })

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Render.FPS)
}

func TestLoad_BadEnvironmentValue(t *testing.T) {
	t.Setenv("SPOTLIGHT_BUFFER", "wide")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty version", func(c *Config) { c.Version = "" }, ""},
		{"version without v", func(c *Config) { c.Version = "1.4.2" }, ""},
		{"major only", func(c *Config) { c.Version = "v1" }, ""},
		{"not semver", func(c *Config) { c.Version = "latest" }, "not a semantic version"},
		{"unsupported major", func(c *Config) { c.Version = "v2.0.0" }, "not supported"},
		{"negative duration", func(c *Config) { c.Overlay.AnimationDuration = -time.Second }, "animation_duration"},
		{"negative buffer", func(c *Config) { c.Overlay.Buffer = -1 }, "overlay.buffer"},
		{"zero caption size", func(c *Config) { c.Overlay.CaptionSize = 0 }, "caption_size"},
		{"zero render size", func(c *Config) { c.Render.Width = 0 }, "render size 0x667"},
		{"zero fps", func(c *Config) { c.Render.FPS = 0 }, "render.fps"},
		{"negative workers", func(c *Config) { c.Render.Workers = -2 }, "render.workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	opts, err := cfg.Options()
	require.NoError(t, err)

	defaults := spotlight.DefaultOptions()
	assert.Equal(t, defaults.AnimationDuration, opts.AnimationDuration)
	assert.Equal(t, defaults.Buffer, opts.Buffer)
	assert.Equal(t, defaults.BackgroundColor, opts.BackgroundColor)
	assert.Equal(t, defaults.CaptionColor, opts.CaptionColor)
	assert.Equal(t, defaults.CaptionFont, opts.CaptionFont)
	assert.Equal(t, defaults.DismissLabel, opts.DismissLabel)

	cfg.Overlay.BackgroundColor = "#336699"
	cfg.Overlay.CaptionSize = 14
	opts, err = cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, graphics.RGB(0x33, 0x66, 0x99), opts.BackgroundColor)
	assert.Equal(t, 14.0, opts.CaptionFont.Size)

	cfg.Overlay.CaptionColor = "white"
	_, err = cfg.Options()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlay.caption_color")
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
version: "1.1"
overlay:
  dismiss_on_target_tap: false
log:
  format: json
`)

	resolved, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, resolved.Root)
	assert.Equal(t, "v1.1", resolved.Version)
	assert.False(t, resolved.Options.DismissOnTargetTap)
	assert.Equal(t, "json", resolved.Log.Format)
	assert.Equal(t, 30, resolved.Render.FPS)
}

func TestResolve_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "version: v3.0.0\n")

	_, err := Resolve(dir)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindConfig))
}
