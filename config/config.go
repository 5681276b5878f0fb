package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/angas/elspot-go/logging"
	"github.com/spf13/viper"
)

type AppConfigApi struct {
	Address string
	Port    int16
}

type AppConfigDatabase struct {
	Path string
	// How many days prices are kept in the database before they get purged
	RetentionDays *int `mapstructure:"retention_days"`
}

func (d AppConfigDatabase) GetRetentionDays() int {
	if d.RetentionDays == nil {
		return 90
	}
	return *d.RetentionDays
}

type AppConfigFeed struct {
	Currency string   // "EUR", "DKK", "NOK" or "SEK"
	Regions  []string // Regions to extract and store, empty means all in the feed
	RunAt    string   `mapstructure:"run_at"` // Cron expression for the daily fetch
	// If not assigned, the official API is used. Useful for mirrors and tests.
	BaseURL *string `mapstructure:"base_url"`
}

func (f AppConfigFeed) GetRunAt() string {
	if f.RunAt == "" {
		return "15 13 * * *" // prices for tomorrow are published around 13:00 CET
	}
	return f.RunAt
}

type AppConfigLogging struct {
	// Min log level for console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

type AppConfig struct {
	Api      AppConfigApi
	Database AppConfigDatabase
	Feed     AppConfigFeed
	Logging  AppConfigLogging
}

func Load(path string) (*AppConfig, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath("config")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c AppConfig

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	return &c, nil
}
