package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Scheduling SchedulingConfig `yaml:"scheduling"`
	Calendar   CalendarConfig   `yaml:"calendar"`
	Travel     TravelConfig     `yaml:"travel"`
	Database   DatabaseConfig   `yaml:"database"`
	Push       PushConfig       `yaml:"push"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// SchedulingConfig holds the slot computation parameters. Every constant the
// availability engine depends on lives here so operators can tune the offered
// windows without a rebuild.
type SchedulingConfig struct {
	WorkStartHour           int    `yaml:"work_start_hour"`
	WorkEndHour             int    `yaml:"work_end_hour"`
	EstimateDurationMinutes int    `yaml:"estimate_duration_minutes"`
	BufferMinutes           int    `yaml:"buffer_minutes"`
	StrideMinutes           int    `yaml:"stride_minutes"`
	DaysAhead               int    `yaml:"days_ahead"`
	Timezone                string `yaml:"timezone"`
	MaxConcurrentChecks     int    `yaml:"max_concurrent_checks"`
}

// CalendarConfig holds the connection settings for the upstream calendar API.
type CalendarConfig struct {
	BaseURL        string        `yaml:"base_url"`
	CalendarID     string        `yaml:"calendar_id"`
	Token          string        `yaml:"token"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"` // Ignored by YAML parser
}

// TravelConfig holds the connection settings for the drive-time estimation API.
type TravelConfig struct {
	BaseURL         string        `yaml:"base_url"`
	APIKey          string        `yaml:"api_key"`
	TimeoutSeconds  int           `yaml:"timeout_seconds"`
	Timeout         time.Duration `yaml:"-"` // Ignored by YAML parser
	DefaultMinutes  int           `yaml:"default_minutes"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver       string `yaml:"driver"` // "sqlite" or "postgres"
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

// PushConfig holds the VAPID keys for staff web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in values for anything the file leaves unset. The
// scheduling defaults mirror the business rules the service launched with:
// 08:00-18:00 work day, 30-minute estimates offered on a 30-minute grid, a
// 15-minute cleanup buffer after each job, and a 30-minute drive assumption
// whenever the travel API cannot answer.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	sched := &cfg.Scheduling
	if sched.WorkStartHour <= 0 {
		sched.WorkStartHour = 8
	}
	if sched.WorkEndHour <= 0 {
		sched.WorkEndHour = 18
	}
	if sched.EstimateDurationMinutes <= 0 {
		sched.EstimateDurationMinutes = 30
	}
	if sched.BufferMinutes <= 0 {
		sched.BufferMinutes = 15
	}
	if sched.StrideMinutes <= 0 {
		sched.StrideMinutes = 30
	}
	if sched.DaysAhead <= 0 {
		sched.DaysAhead = 14
	}
	if sched.Timezone == "" {
		sched.Timezone = "America/New_York"
	}
	if sched.MaxConcurrentChecks <= 0 {
		log.Printf("scheduling.max_concurrent_checks is not set or invalid; defaulting to 4")
		sched.MaxConcurrentChecks = 4
	}

	if cfg.Calendar.TimeoutSeconds <= 0 {
		cfg.Calendar.TimeoutSeconds = 10
	}
	cfg.Calendar.Timeout = time.Duration(cfg.Calendar.TimeoutSeconds) * time.Second

	if cfg.Travel.TimeoutSeconds <= 0 {
		cfg.Travel.TimeoutSeconds = 5
	}
	cfg.Travel.Timeout = time.Duration(cfg.Travel.TimeoutSeconds) * time.Second
	if cfg.Travel.DefaultMinutes <= 0 {
		cfg.Travel.DefaultMinutes = 30
	}
	if cfg.Travel.CacheTTLSeconds <= 0 {
		cfg.Travel.CacheTTLSeconds = 600
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "bookings.db"
	}

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}
}
