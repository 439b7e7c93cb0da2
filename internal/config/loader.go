package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = ".sortscope"
	configType = "yaml"
	envPrefix  = "SORTSCOPE"
)

// LoadLayered resolves configuration from defaults, an optional config file
// and SORTSCOPE_* environment variables, in increasing precedence. With an
// empty path the file is searched for in the working directory and $HOME; a
// missing file is not an error.
func LoadLayered(path string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("algorithm", d.Algorithm)

	v.SetDefault("input.preset", d.Input.Preset)
	v.SetDefault("input.size", d.Input.Size)
	v.SetDefault("input.min", d.Input.Min)
	v.SetDefault("input.max", d.Input.Max)
	v.SetDefault("input.seed", d.Input.Seed)

	v.SetDefault("playback.speed", d.Playback.Speed)
	v.SetDefault("playback.delay_ms", d.Playback.DelayMs)
	v.SetDefault("playback.theme", d.Playback.Theme)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.run_cache", d.Server.RunCache)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}
