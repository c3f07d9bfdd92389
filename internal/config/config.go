package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration, loaded from an optional
// flatquery.yaml and FLATQUERY_-prefixed environment variables.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	Server  ServerConfig  `mapstructure:"server"`
}

type StorageConfig struct {
	Path      string `mapstructure:"path"`
	Extension string `mapstructure:"extension"`
	Delimiter string `mapstructure:"delimiter"`
	Mode      string `mapstructure:"mode"`
}

type LoggingConfig struct {
	SeqURL string `mapstructure:"seq_url"`
}

type ServerConfig struct {
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`
}

// Load reads the configuration. The file is optional; environment
// variables override file values (FLATQUERY_STORAGE_PATH -> storage.path).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage.path", "data")
	v.SetDefault("storage.extension", "csv")
	v.SetDefault("storage.delimiter", ",")
	v.SetDefault("storage.mode", "read")
	v.SetDefault("server.port", 5432)
	v.SetDefault("server.metrics_port", 9090)

	v.SetConfigName("flatquery")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("FLATQUERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// The file is optional; any other failure is a real error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
