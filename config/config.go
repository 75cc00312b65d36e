// Package config loads cmd/schemacd's configuration. The one-shot compiler
// CLI (cmd/schemac) takes its options directly from argv and has no use for
// this package.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the compile service's configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the HTTP listener configuration.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// CacheConfig selects and configures the compiled-artifact cache backing
// store (internal/cache).
type CacheConfig struct {
	Mode  string          `mapstructure:"mode"` // "file" or "mongo"
	Mongo DatabaseConfig  `mapstructure:"mongo"`
	File  FileStoreConfig `mapstructure:"file"`
}

// DatabaseConfig holds the MongoDB connection configuration.
type DatabaseConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
	DatabaseName     string `mapstructure:"database_name"`
}

// FileStoreConfig holds the file-backed cache configuration.
type FileStoreConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, text
	Output     string `mapstructure:"output"`      // stdout, file
	FilePath   string `mapstructure:"file_path"`   // Path to log file
	MaxSize    int    `mapstructure:"max_size"`    // Megabytes
	MaxBackups int    `mapstructure:"max_backups"` // Number of backups
	MaxAge     int    `mapstructure:"max_age"`     // Days
	Compress   bool   `mapstructure:"compress"`    // Compress backups
}

// LoadConfig reads the configuration from config files and environment
// variables.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../..") // project root, when run from cmd/schemacd

	viper.SetEnvPrefix("SCHEMAC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
