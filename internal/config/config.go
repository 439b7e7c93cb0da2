package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultPreset    = "random"
	DefaultSize      = 10
	DefaultMin       = 1
	DefaultMax       = 99
	DefaultSpeed     = 1.0
	DefaultDelayMs   = 500
	DefaultTheme     = "cyberpunk"
	DefaultAddr      = ":5000"
	DefaultRunCache  = 64
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	MinSpeed = 0.1
	MaxSpeed = 5.0

	// MaxAbsValue bounds generated values so the range width fits an int.
	MaxAbsValue = 1_000_000_000
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrInvalidValues = errors.New("config: invalid array values")
)

type Config struct {
	Algorithm string         `yaml:"algorithm" mapstructure:"algorithm"`
	Input     InputConfig    `yaml:"input" mapstructure:"input"`
	Playback  PlaybackConfig `yaml:"playback" mapstructure:"playback"`
	Server    ServerConfig   `yaml:"server" mapstructure:"server"`
	Log       LogConfig      `yaml:"log" mapstructure:"log"`
}

type InputConfig struct {
	Preset string `yaml:"preset" mapstructure:"preset"`
	Values []int  `yaml:"values,omitempty" mapstructure:"values"`
	Size   int    `yaml:"size" mapstructure:"size"`
	Min    int    `yaml:"min" mapstructure:"min"`
	Max    int    `yaml:"max" mapstructure:"max"`
	Seed   int64  `yaml:"seed" mapstructure:"seed"`
}

type PlaybackConfig struct {
	Speed   float64 `yaml:"speed" mapstructure:"speed"`
	DelayMs int     `yaml:"delay_ms" mapstructure:"delay_ms"`
	Theme   string  `yaml:"theme" mapstructure:"theme"`
}

type ServerConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	RunCache int    `yaml:"run_cache" mapstructure:"run_cache"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Input: InputConfig{
			Preset: DefaultPreset,
			Size:   DefaultSize,
			Min:    DefaultMin,
			Max:    DefaultMax,
		},
		Playback: PlaybackConfig{
			Speed:   DefaultSpeed,
			DelayMs: DefaultDelayMs,
			Theme:   DefaultTheme,
		},
		Server: ServerConfig{
			Addr:     DefaultAddr,
			RunCache: DefaultRunCache,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Input.Validate(); err != nil {
		return err
	}
	if c.Playback.Speed < MinSpeed || c.Playback.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed must be within [%.1f, %.1f], got %.2f", ErrInvalidConfig, MinSpeed, MaxSpeed, c.Playback.Speed)
	}
	if c.Playback.DelayMs <= 0 {
		return fmt.Errorf("%w: delay must be positive, got %d", ErrInvalidConfig, c.Playback.DelayMs)
	}
	if c.Server.RunCache <= 0 {
		return fmt.Errorf("%w: run cache must be positive, got %d", ErrInvalidConfig, c.Server.RunCache)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Validate checks the generation parameters. Explicit Values are not range
// checked.
func (c InputConfig) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("%w: size must be non-negative, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Min > c.Max {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidConfig, c.Min, c.Max)
	}
	if c.Min < -MaxAbsValue || c.Max > MaxAbsValue {
		return fmt.Errorf("%w: value range [%d, %d] exceeds ±%d", ErrInvalidConfig, c.Min, c.Max, MaxAbsValue)
	}
	return nil
}

// ParseValues parses a comma or space separated list of integers such as
// "3,1,2". An empty string yields an empty slice.
func ParseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidValues, f)
		}
		values = append(values, v)
	}
	return values, nil
}
