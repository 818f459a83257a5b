// Package config loads the optional spotlight.yaml file and SPOTLIGHT_*
// environment overrides and resolves them into controller options.
//
// Precedence, lowest first: built-in defaults, spotlight.yaml, a .env file
// next to it, then the process environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/spotlight/pkg/errors"
	"github.com/go-drift/spotlight/pkg/graphics"
	"github.com/go-drift/spotlight/pkg/logging"
	"github.com/go-drift/spotlight/pkg/spotlight"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "spotlight.yaml"

// SupportedMajor is the only configuration format major version accepted.
const SupportedMajor = "v1"

// Config represents spotlight.yaml.
type Config struct {
	Version string        `yaml:"version,omitempty" env:"SPOTLIGHT_CONFIG_VERSION"`
	Overlay OverlayConfig `yaml:"overlay"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

// OverlayConfig mirrors the configurable spotlight.Options fields.
// Colors are #RRGGBB or #AARRGGBB.
type OverlayConfig struct {
	AnimationDuration           time.Duration `yaml:"animation_duration" env:"SPOTLIGHT_ANIMATION_DURATION"`
	Buffer                      float64       `yaml:"buffer" env:"SPOTLIGHT_BUFFER"`
	BackgroundColor             string        `yaml:"background_color" env:"SPOTLIGHT_BACKGROUND_COLOR"`
	CaptionColor                string        `yaml:"caption_color" env:"SPOTLIGHT_CAPTION_COLOR"`
	CaptionSize                 float64       `yaml:"caption_size" env:"SPOTLIGHT_CAPTION_SIZE"`
	AutoDismissOnHighlightedTap bool          `yaml:"auto_dismiss_on_highlighted_tap" env:"SPOTLIGHT_AUTO_DISMISS"`
	DismissOnTargetTap          bool          `yaml:"dismiss_on_target_tap" env:"SPOTLIGHT_DISMISS_ON_TARGET_TAP"`
	ShowDismissControl          bool          `yaml:"show_dismiss_control" env:"SPOTLIGHT_SHOW_DISMISS_CONTROL"`
	DismissLabel                string        `yaml:"dismiss_label" env:"SPOTLIGHT_DISMISS_LABEL"`
}

// RenderConfig controls frame export.
type RenderConfig struct {
	Width   int    `yaml:"width" env:"SPOTLIGHT_RENDER_WIDTH"`
	Height  int    `yaml:"height" env:"SPOTLIGHT_RENDER_HEIGHT"`
	FPS     int    `yaml:"fps" env:"SPOTLIGHT_RENDER_FPS"`
	Output  string `yaml:"output" env:"SPOTLIGHT_RENDER_OUTPUT"`
	Workers int    `yaml:"workers,omitempty" env:"SPOTLIGHT_RENDER_WORKERS"`
}

// LogConfig selects the slog level and format.
type LogConfig struct {
	Level  string `yaml:"level" env:"SPOTLIGHT_LOG_LEVEL"`
	Format string `yaml:"format" env:"SPOTLIGHT_LOG_FORMAT"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root    string
	Version string
	Options spotlight.Options
	Render  RenderConfig
	Log     LogConfig
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	opts := spotlight.DefaultOptions()
	return &Config{
		Version: SupportedMajor + ".0.0",
		Overlay: OverlayConfig{
			AnimationDuration:           opts.AnimationDuration,
			Buffer:                      opts.Buffer,
			BackgroundColor:             opts.BackgroundColor.Hex(),
			CaptionColor:                opts.CaptionColor.Hex(),
			CaptionSize:                 opts.CaptionFont.Size,
			AutoDismissOnHighlightedTap: opts.AutoDismissOnHighlightedTap,
			DismissOnTargetTap:          opts.DismissOnTargetTap,
			ShowDismissControl:          opts.ShowDismissControl,
			DismissLabel:                opts.DismissLabel,
		},
		Render: RenderConfig{
			Width:  375,
			Height: 667,
			FPS:    30,
			Output: "frames",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadOptional reads spotlight.yaml from dir on top of the defaults.
// A missing file is not an error.
func LoadOptional(dir string) (*Config, error) {
	cfg := Default()
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.New("config.LoadOptional", errors.KindConfig,
			fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("config.LoadOptional", errors.KindConfig,
			fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return cfg, nil
}

// Load reads spotlight.yaml, then .env from dir, then applies SPOTLIGHT_*
// variables and validates the result.
func Load(dir string) (*Config, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, errors.New("config.Load", errors.KindConfig,
				fmt.Errorf("failed to read .env: %w", err))
		}
		logging.Logger().Debug("no .env file found, using environment variables", "dir", dir)
	}

	if err := env.Load(cfg, nil); err != nil {
		return nil, errors.New("config.Load", errors.KindConfig,
			fmt.Errorf("failed to load environment variables: %w", err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads the configuration in dir and converts it to options.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := Load(dir)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return &Resolved{
		Root:    dir,
		Version: canonicalVersion(cfg.Version),
		Options: opts,
		Render:  cfg.Render,
		Log:     cfg.Log,
	}, nil
}

// Validate checks ranges and the format version.
func (c *Config) Validate() error {
	var problems []string

	if v := strings.TrimSpace(c.Version); v != "" {
		canonical := canonicalVersion(v)
		switch {
		case !semver.IsValid(canonical):
			problems = append(problems, fmt.Sprintf("version %q is not a semantic version", v))
		case semver.Major(canonical) != SupportedMajor:
			problems = append(problems, fmt.Sprintf("version %q is not supported (want %s.x)", v, SupportedMajor))
		}
	}
	if c.Overlay.AnimationDuration < 0 {
		problems = append(problems, "overlay.animation_duration must not be negative")
	}
	if c.Overlay.Buffer < 0 {
		problems = append(problems, "overlay.buffer must not be negative")
	}
	if c.Overlay.CaptionSize <= 0 {
		problems = append(problems, "overlay.caption_size must be positive")
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		problems = append(problems, fmt.Sprintf("render size %dx%d must be positive", c.Render.Width, c.Render.Height))
	}
	if c.Render.FPS <= 0 {
		problems = append(problems, "render.fps must be positive")
	}
	if c.Render.Workers < 0 {
		problems = append(problems, "render.workers must not be negative")
	}

	if len(problems) > 0 {
		return errors.New("config.Validate", errors.KindConfig,
			fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; ")))
	}
	return nil
}

// Options converts the overlay section to controller options.
func (c *Config) Options() (spotlight.Options, error) {
	opts := spotlight.DefaultOptions()

	bg, err := graphics.ParseColor(c.Overlay.BackgroundColor)
	if err != nil {
		return opts, errors.New("config.Options", errors.KindConfig,
			fmt.Errorf("overlay.background_color: %w", err))
	}
	caption, err := graphics.ParseColor(c.Overlay.CaptionColor)
	if err != nil {
		return opts, errors.New("config.Options", errors.KindConfig,
			fmt.Errorf("overlay.caption_color: %w", err))
	}

	opts.AnimationDuration = c.Overlay.AnimationDuration
	opts.Buffer = c.Overlay.Buffer
	opts.BackgroundColor = bg
	opts.CaptionColor = caption
	opts.CaptionFont.Size = c.Overlay.CaptionSize
	opts.AutoDismissOnHighlightedTap = c.Overlay.AutoDismissOnHighlightedTap
	opts.DismissOnTargetTap = c.Overlay.DismissOnTargetTap
	opts.ShowDismissControl = c.Overlay.ShowDismissControl
	opts.DismissLabel = c.Overlay.DismissLabel
	return opts, nil
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
