package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"app"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// Default is the configuration used when no file is found or the file is unusable.
func Default() *Config {
	var cfg Config
	cfg.App.Name = "rateconv"
	cfg.Log.Level = "warn"
	return &cfg
}

// LoadConfig reads an optional config.yaml. Environment variables such as
// LOG_LEVEL override it; without a file the defaults apply.
func LoadConfig() (*Config, error) {
	return loadConfig(".", "./config", "../config", "../../config")
}

func loadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for _, p := range paths {
		v.AddConfigPath(p)
	}

	defaults := Default()
	v.SetDefault("app.name", defaults.App.Name)
	v.SetDefault("log.level", defaults.Log.Level)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
