package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/torus-life/model"
)

const (
	DefaultGridSize            = 40
	DefaultFrameRate           = 150 * time.Millisecond
	DefaultStagnationThreshold = 5
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Duration decodes from either a Go duration string ("150ms") or integer nanoseconds
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalJSON accepts "150ms" or 150000000
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.parse(s)
	}
	var ns int64
	if err := json.Unmarshal(data, &ns); err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] not a duration: %s", data)
	}
	*d = Duration(ns)
	return nil
}

// MarshalJSON encodes the duration as a string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Std().String())
}

// UnmarshalYAML accepts "150ms" or 150000000
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var ns int64
	if err := value.Decode(&ns); err == nil {
		*d = Duration(ns)
		return nil
	}
	return d.parse(value.Value)
}

// MarshalYAML encodes the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Std().String(), nil
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "[Duration] failed to parse: %+v", s)
	}
	*d = Duration(v)
	return nil
}

// Config holds the configuration for the simulation driver
type Config struct {
	Rows                int      `json:"rows" yaml:"rows"`
	Cols                int      `json:"cols" yaml:"cols"`
	FrameRate           Duration `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations      int      `json:"max_generations" yaml:"max_generations"`
	Seed                int64    `json:"seed" yaml:"seed"`
	Workers             int      `json:"workers" yaml:"workers"`
	AutoRestart         bool     `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int      `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	AliveColor          string   `json:"alive_color" yaml:"alive_color"`
	DeadColor           string   `json:"dead_color" yaml:"dead_color"`
	ShowStats           bool     `json:"show_stats" yaml:"show_stats"`
}

// DefaultConfig returns sensible defaults.
// Seed 0 means the process-wide random source, Workers 0 means one per CPU.
func DefaultConfig() Config {
	return Config{
		Rows:                DefaultGridSize,
		Cols:                DefaultGridSize,
		FrameRate:           Duration(DefaultFrameRate),
		MaxGenerations:      0, // Run until interrupted
		Workers:             1,
		AutoRestart:         false,
		StagnationThreshold: DefaultStagnationThreshold,
		AliveColor:          model.DefaultAliveColor,
		DeadColor:           model.DefaultDeadColor,
		ShowStats:           true,
	}
}

// LoadConfig loads configuration from a JSON or YAML file on top of DefaultConfig
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}
	return config, nil
}

// Validate rejects configurations the driver cannot run
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be positive, got %dx%d", c.Rows, c.Cols)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %s", c.FrameRate.Std())
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	case c.AutoRestart && c.StagnationThreshold <= 0:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	}
	return nil
}
