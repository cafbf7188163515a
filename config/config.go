// Package config loads the YAML file that configures a circuits run.
//
// Example:
//
//	mode: full
//	rounds: 0          # bounded budget; 0 picks 10 for 20 points, else 1000
//	workers: 0         # 0 = GOMAXPROCS
//	grid:
//	  fit: false       # true sizes the grid from the input points
//	  origin: [0, 0, 0]
//	  side: 10000
//	  cells: 10
//	  search_radius: 1
//	log:
//	  level: info      # debug | info | warn | error
//	  format: text     # text | json
//	  progress_interval: 1s
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/circuits/boxel"
	"github.com/katalvlaran/circuits/circuit"
	"github.com/katalvlaran/circuits/point"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the file document.
type Config struct {
	Mode    string     `yaml:"mode"`
	Rounds  int        `yaml:"rounds"`
	Workers int        `yaml:"workers"`
	Grid    GridConfig `yaml:"grid"`
	Log     LogConfig  `yaml:"log"`
}

// GridConfig mirrors boxel.Options.
type GridConfig struct {
	Fit          bool     `yaml:"fit"`
	Origin       [3]int64 `yaml:"origin"`
	Side         int64    `yaml:"side"`
	Cells        int      `yaml:"cells"`
	SearchRadius int      `yaml:"search_radius"`
}

// LogConfig selects the logger and progress cadence.
type LogConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"`
	ProgressInterval string `yaml:"progress_interval"`
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	return Parse(b)
}

// Parse decodes a YAML document over the defaults, then normalizes and validates it.
func Parse(b []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		Mode: string(circuit.ModeFull),
		Grid: GridConfig{
			Side:         boxel.DefaultSide,
			Cells:        boxel.DefaultCells,
			SearchRadius: boxel.DefaultSearchRadius,
		},
		Log: LogConfig{
			Level:            "info",
			Format:           "text",
			ProgressInterval: "1s",
		},
	}
}

// Normalize lower-cases enumerations and fills blank fields from Defaults.
func (c *Config) Normalize() {
	d := Defaults()
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if strings.TrimSpace(c.Log.ProgressInterval) == "" {
		c.Log.ProgressInterval = d.Log.ProgressInterval
	}
	if c.Grid.SearchRadius == 0 {
		c.Grid.SearchRadius = d.Grid.SearchRadius
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch circuit.Mode(c.Mode) {
	case circuit.ModeBounded, circuit.ModeFull:
	default:
		return fmt.Errorf("%w: mode %q (want bounded|full)", ErrInvalid, c.Mode)
	}
	if c.Rounds < 0 {
		return fmt.Errorf("%w: rounds %d < 0", ErrInvalid, c.Rounds)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalid, c.Workers)
	}
	if !c.Grid.Fit && (c.Grid.Side <= 0 || c.Grid.Cells <= 0) {
		return fmt.Errorf("%w: grid side %d and cells %d must be positive", ErrInvalid, c.Grid.Side, c.Grid.Cells)
	}
	if c.Grid.SearchRadius < 0 {
		return fmt.Errorf("%w: search_radius %d < 0", ErrInvalid, c.Grid.SearchRadius)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q (want text|json)", ErrInvalid, c.Log.Format)
	}
	if _, err := time.ParseDuration(c.Log.ProgressInterval); err != nil {
		return fmt.Errorf("%w: progress_interval: %v", ErrInvalid, err)
	}

	return nil
}

// BoxelOptions returns grid options for points: fitted when Grid.Fit is set,
// otherwise the configured fixed grid.
func (c Config) BoxelOptions(points []point.Point) boxel.Options {
	radius := boxel.WithSearchRadius(c.Grid.SearchRadius)
	if c.Grid.Fit {
		return boxel.FitOptions(points, radius)
	}

	return boxel.DefaultOptions(
		boxel.WithOrigin(point.New(c.Grid.Origin[0], c.Grid.Origin[1], c.Grid.Origin[2])),
		boxel.WithSide(c.Grid.Side),
		boxel.WithCells(c.Grid.Cells),
		radius,
	)
}

// Level returns the configured slog level; invalid values fall back to Info.
func (c Config) Level() slog.Level {
	l, err := c.level()
	if err != nil {
		return slog.LevelInfo
	}

	return l
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}

	return l, nil
}

// ProgressInterval returns the parsed progress cadence.
func (c Config) ProgressInterval() time.Duration {
	d, err := time.ParseDuration(c.Log.ProgressInterval)
	if err != nil {
		return time.Second
	}

	return d
}

// Logger builds the configured circuit logger on stderr.
func (c Config) Logger() *circuit.Logger {
	if c.Log.Format == "json" {
		return circuit.NewJSONLogger(c.Level())
	}

	return circuit.NewTextLogger(c.Level())
}
