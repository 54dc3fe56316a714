// Package config loads and validates the application configuration
// from YAML files and environment variables via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Dino    DinoConfig    `mapstructure:"dino"`
	Flappy  FlappyConfig  `mapstructure:"flappy"`
	UI      UIConfig      `mapstructure:"ui"`
	Rollout RolloutConfig `mapstructure:"rollout"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DinoConfig holds the runner knobs exposed through configuration; the
// remaining physics constants live in the dino package defaults.
type DinoConfig struct {
	ScreenWidth   int     `mapstructure:"screen_width"`
	ScreenHeight  int     `mapstructure:"screen_height"`
	MaxSteps      int     `mapstructure:"max_steps"`
	BaseSpeed     float64 `mapstructure:"base_speed"`
	SpeedIncrease float64 `mapstructure:"speed_increase"`
}

// FlappyConfig holds the flyer knobs exposed through configuration.
type FlappyConfig struct {
	PipeSpeed float64 `mapstructure:"pipe_speed"`
	GapHalf   float64 `mapstructure:"gap_half"`
	MaxVy     float64 `mapstructure:"max_vy"`
}

// UIConfig holds viewer settings.
type UIConfig struct {
	Scale        int    `mapstructure:"scale"`
	Title        string `mapstructure:"title"`
	TickInterval int    `mapstructure:"tick_interval"`
}

// RolloutConfig holds headless rollout driver settings.
type RolloutConfig struct {
	Env      string `mapstructure:"env"`
	Episodes int    `mapstructure:"episodes"`
	Workers  int    `mapstructure:"workers"`
	Seed     int64  `mapstructure:"seed"`
	OutDir   string `mapstructure:"out_dir"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("dino.screen_width", 84)
	v.SetDefault("dino.screen_height", 84)
	v.SetDefault("dino.max_steps", 5000)
	v.SetDefault("dino.base_speed", 1.0)
	v.SetDefault("dino.speed_increase", 0.001)

	v.SetDefault("flappy.pipe_speed", 0.01)
	v.SetDefault("flappy.gap_half", 0.1)
	v.SetDefault("flappy.max_vy", 0.3)

	v.SetDefault("ui.scale", 6)
	v.SetDefault("ui.title", "tinygym")
	v.SetDefault("ui.tick_interval", 2)

	v.SetDefault("rollout.env", "dino")
	v.SetDefault("rollout.episodes", 100)
	v.SetDefault("rollout.workers", 4)
	v.SetDefault("rollout.seed", 0)
	v.SetDefault("rollout.out_dir", "out")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("TINYGYM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of trace/debug/info/warn/error, got %q", c.Logging.Level)
	}

	if c.Dino.ScreenWidth <= 0 || c.Dino.ScreenHeight <= 0 {
		return fmt.Errorf("dino screen dimensions must be positive")
	}
	if c.Dino.MaxSteps <= 0 {
		return fmt.Errorf("dino.max_steps must be positive")
	}
	if c.Dino.BaseSpeed <= 0 {
		return fmt.Errorf("dino.base_speed must be positive")
	}
	if c.Dino.SpeedIncrease < 0 {
		return fmt.Errorf("dino.speed_increase must be non-negative")
	}

	if c.Flappy.PipeSpeed <= 0 {
		return fmt.Errorf("flappy.pipe_speed must be positive")
	}
	if c.Flappy.GapHalf <= 0 {
		return fmt.Errorf("flappy.gap_half must be positive")
	}
	if c.Flappy.MaxVy <= 0 {
		return fmt.Errorf("flappy.max_vy must be positive")
	}

	if c.UI.Scale <= 0 {
		return fmt.Errorf("ui.scale must be positive")
	}
	if c.UI.TickInterval <= 0 {
		return fmt.Errorf("ui.tick_interval must be positive")
	}

	if c.Rollout.Env != "dino" && c.Rollout.Env != "flappy" {
		return fmt.Errorf("rollout.env must be dino or flappy, got %q", c.Rollout.Env)
	}
	if c.Rollout.Episodes <= 0 {
		return fmt.Errorf("rollout.episodes must be positive")
	}
	if c.Rollout.Workers <= 0 {
		return fmt.Errorf("rollout.workers must be positive")
	}

	return nil
}
