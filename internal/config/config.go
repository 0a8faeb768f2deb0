package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the main structure mapping the entire application
// configuration. The mapstructure tags map YAML keys to Go struct fields.
type Config struct {
	// Server configuration section containing HTTP server settings
	Server struct {
		Port int `mapstructure:"port"` // HTTP server port (default: 8080)
	} `mapstructure:"server"`

	// Database configuration section for SQLite settings
	Database struct {
		Name string `mapstructure:"name"` // SQLite database file name
	} `mapstructure:"database"`

	// Auth carries the basic-auth credentials guarding mutating routes
	Auth struct {
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"auth"`

	// Audit configuration for the asynchronous mutation trail
	Audit struct {
		BufferSize  int `mapstructure:"buffer_size"`  // Size of the audit event channel buffer
		WorkerCount int `mapstructure:"worker_count"` // Number of worker goroutines persisting entries
	} `mapstructure:"audit"`

	// Monitor configuration for image URL reachability checking
	Monitor struct {
		IntervalMinutes int `mapstructure:"interval_minutes"` // Interval in minutes between image checks
	} `mapstructure:"monitor"`
}

// LoadConfig loads the application configuration using Viper.
// Precedence: environment variables over ./configs/config.yaml over the
// defaults below. Returns a populated Config or an error when the file
// exists but cannot be read.
func LoadConfig() (*Config, error) {
	// Environment variables override file values; dots become underscores
	// so "auth.password" is overridable as AUTH_PASSWORD.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Defaults keep the service bootable without any config file.
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.name", "pokedex.db")
	viper.SetDefault("auth.username", "admin")
	viper.SetDefault("auth.password", "secret")
	viper.SetDefault("audit.buffer_size", 1000)
	viper.SetDefault("audit.worker_count", 5)
	viper.SetDefault("monitor.interval_minutes", 5)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Not fatal, the defaults above take over.
			log.Println("Config file not found, using default values")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Credentials are deliberately left out of this line.
	log.Printf("Configuration loaded: Server Port=%d, DB Name=%s, Audit Buffer=%d, Monitor Interval=%dmin",
		cfg.Server.Port, cfg.Database.Name, cfg.Audit.BufferSize, cfg.Monitor.IntervalMinutes)

	return &cfg, nil
}
