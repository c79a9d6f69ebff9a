// Package config holds the application configuration, loaded through
// viper from an optional config file, environment, and CLI flags.
package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Config is the root configuration structure.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	Import ImportConfig `mapstructure:"import"`
	Mesh   MeshConfig   `mapstructure:"mesh"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // "console" or "json"
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"` // MB before rotation
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// ImportConfig holds settings for fabric import and placement.
type ImportConfig struct {
	TrackAxis   string  `mapstructure:"track_axis"`   // prototype long axis, e.g. "POS_Z"
	JointRadius float32 `mapstructure:"joint_radius"` // joint sphere radius and strut inset
}

// MeshConfig holds settings for tessellation.
type MeshConfig struct {
	Cells int `mapstructure:"cells"` // marching cubes resolution
}

// SetDefaults registers the default values on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("import.track_axis", "POS_Z")
	v.SetDefault("import.joint_radius", 0.1)
	v.SetDefault("mesh.cells", 64)
}

// Parse unmarshals a viper instance into a Config.
func Parse(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// Load initializes the configuration singleton from viper.
func Load(v *viper.Viper) error {
	var loadErr error
	once.Do(func() {
		cfg, err := Parse(v)
		if err != nil {
			loadErr = err
			return
		}
		instance = cfg
	})
	return loadErr
}

// Get returns the loaded configuration instance.
func Get() *Config {
	if instance == nil {
		panic("configuration not initialized, call config.Load in the root command")
	}
	return instance
}
