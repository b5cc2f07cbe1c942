package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Pharmacy operations specifics
	Time      TimeConfig
	Holidays  HolidaysConfig
	Tasks     TasksConfig
	Dashboard DashboardConfig
	Scheduler SchedulerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TimeConfig pins the operating civil timezone. Every due/overdue/lock
// comparison in the service happens in this zone.
type TimeConfig struct {
	Timezone string // IANA name, e.g. "Africa/Johannesburg"
}

// HolidaysConfig configures the holiday calendar collaborator.
type HolidaysConfig struct {
	Region string

	// Static entries seeded into the in-memory store.
	Entries []HolidayEntryConfig

	// Optional Google public-holiday feed, merged on top of the static
	// entries at startup. Both empty disables the feed.
	GoogleCredentialsPath string
	GoogleCalendarID      string // e.g. "en.sa#holiday@group.v.calendar.google.com"
}

type HolidayEntryConfig struct {
	Date string `mapstructure:"date"` // 2006-01-02
	Name string `mapstructure:"name"`
}

type TasksConfig struct {
	File string // YAML file of master task definitions
}

type DashboardConfig struct {
	CacheTTL  time.Duration
	CacheSize int
}

type SchedulerConfig struct {
	// Interval between job passes in the scheduler binary.
	Interval time.Duration

	// MaterializeAheadDays controls how far past today each materialize
	// pass reaches.
	MaterializeAheadDays int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Operating timezone
	cfg.Time.Timezone = viper.GetString("time.timezone")
	if tz := viper.GetString("timezone"); tz != "" {
		cfg.Time.Timezone = tz
	}

	// Holiday calendar
	cfg.Holidays.Region = viper.GetString("holidays.region")
	cfg.Holidays.GoogleCredentialsPath = viper.GetString("holidays.google_credentials_path")
	cfg.Holidays.GoogleCalendarID = viper.GetString("holidays.google_calendar_id")
	if creds := viper.GetString("google_calendar_credentials"); creds != "" {
		cfg.Holidays.GoogleCredentialsPath = creds
	}
	if err := viper.UnmarshalKey("holidays.entries", &cfg.Holidays.Entries); err != nil {
		return nil, fmt.Errorf("error parsing holidays.entries: %w", err)
	}

	// Task definitions
	cfg.Tasks.File = viper.GetString("tasks.file")

	// Dashboard cache
	cfg.Dashboard.CacheTTL = viper.GetDuration("dashboard.cache_ttl")
	cfg.Dashboard.CacheSize = viper.GetInt("dashboard.cache_size")

	// Scheduler jobs
	cfg.Scheduler.Interval = viper.GetDuration("scheduler.interval")
	cfg.Scheduler.MaterializeAheadDays = viper.GetInt("scheduler.materialize_ahead_days")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("time.timezone", "Africa/Johannesburg")
	viper.SetDefault("holidays.region", "ZA")
	viper.SetDefault("tasks.file", "./config/tasks.yaml")
	viper.SetDefault("dashboard.cache_ttl", "5m")
	viper.SetDefault("dashboard.cache_size", 64)
	viper.SetDefault("scheduler.interval", "1h")
	viper.SetDefault("scheduler.materialize_ahead_days", 7)
}
