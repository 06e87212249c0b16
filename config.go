package goEdu

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/MrEthical07/goEdu/api"
	"github.com/MrEthical07/goEdu/transport"
)

// EnvPrefix prefixes every environment override, e.g. EDU_API_BASE_URL.
const EnvPrefix = "EDU"

// Session backend names accepted by SessionConfig.Backend.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

const defaultEmitTimeout = 100 * time.Millisecond

// Config holds every setting of a Client. Zero-valued sections fall back to the
// defaults when loaded through LoadConfig or the Builder.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Timeouts TimeoutsConfig `yaml:"timeouts"`
	Session  SessionConfig  `yaml:"session"`
	Events   EventsConfig   `yaml:"events"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Log      LogConfig      `yaml:"log"`
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig locates the backend.
type APIConfig struct {
	// BaseURL includes the path prefix, e.g. "http://localhost:8080/api".
	BaseURL          string `yaml:"base_url" split_words:"true"`
	LoginPath        string `yaml:"login_path" split_words:"true"`
	UserAgent        string `yaml:"user_agent" split_words:"true"`
	MaxResponseBytes int64  `yaml:"max_response_bytes" split_words:"true"`
}

/*
====================================
TIMEOUTS CONFIG
====================================
*/

// TimeoutsConfig bounds each call class.
type TimeoutsConfig struct {
	Default time.Duration `yaml:"default"`
	Upload  time.Duration `yaml:"upload"`
	AI      time.Duration `yaml:"ai"`
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig selects where the signed-in identity is kept.
type SessionConfig struct {
	Backend     string `yaml:"backend"`
	Dir         string `yaml:"dir"`
	RedisAddr   string `yaml:"redis_addr" split_words:"true"`
	RedisPrefix string `yaml:"redis_prefix" split_words:"true"`
	// Profile namespaces Redis keys so several identities can share one server.
	Profile string        `yaml:"profile"`
	TTL     time.Duration `yaml:"ttl"`
}

/*
====================================
EVENTS / METRICS / LOG CONFIG
====================================
*/

// EventsConfig controls lifecycle event dispatch. Without DropIfFull a full
// buffer delays the calling operation by at most EmitTimeout.
type EventsConfig struct {
	Enabled     bool          `yaml:"enabled"`
	BufferSize  int           `yaml:"buffer_size" split_words:"true"`
	DropIfFull  bool          `yaml:"drop_if_full" split_words:"true"`
	EmitTimeout time.Duration `yaml:"emit_timeout" split_words:"true"`
}

// MetricsConfig controls in-process counters.
type MetricsConfig struct {
	Enabled                 bool `yaml:"enabled"`
	EnableLatencyHistograms bool `yaml:"enable_latency_histograms" split_words:"true"`
}

// LogConfig selects log level and format ("json" or "console").
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:          "http://localhost:8080/api",
			LoginPath:        transport.DefaultLoginPath,
			UserAgent:        transport.DefaultUserAgent,
			MaxResponseBytes: transport.DefaultMaxResponseBytes,
		},
		Timeouts: TimeoutsConfig{
			Default: transport.DefaultTimeout,
			Upload:  api.DefaultUploadTimeout,
			AI:      api.DefaultAITimeout,
		},
		Session: SessionConfig{
			Backend:     BackendMemory,
			RedisPrefix: "edu",
			Profile:     "default",
		},
		Events: EventsConfig{
			Enabled:     false,
			BufferSize:  256,
			DropIfFull:  true,
			EmitTimeout: defaultEmitTimeout,
		},
		Metrics: MetricsConfig{
			Enabled:                 true,
			EnableLatencyHistograms: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

// LoadConfig builds a Config from defaults, a ".env" file in the working
// directory, the YAML file at path (skipped when empty), and EDU_* environment
// variables, in that order of precedence.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

/*
====================================
VALIDATION
====================================
*/

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	// API
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("API BaseURL must be an absolute http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.LoginPath != "" && !strings.HasPrefix(c.API.LoginPath, "/") {
		return errors.New("API LoginPath must start with '/'")
	}
	if c.API.MaxResponseBytes < 0 {
		return errors.New("API MaxResponseBytes must be >= 0")
	}

	// Timeouts
	if c.Timeouts.Default < 0 || c.Timeouts.Upload < 0 || c.Timeouts.AI < 0 {
		return errors.New("Timeouts must be >= 0")
	}

	// Session
	switch c.Session.Backend {
	case "", BackendMemory:
	case BackendFile:
		if strings.TrimSpace(c.Session.Dir) == "" {
			return errors.New("Session Dir is required for the file backend")
		}
	case BackendRedis:
		if strings.TrimSpace(c.Session.RedisAddr) == "" {
			return errors.New("Session RedisAddr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unsupported Session Backend %q", c.Session.Backend)
	}
	if c.Session.TTL < 0 {
		return errors.New("Session TTL must be >= 0")
	}
	if strings.Contains(c.Session.Profile, ":") || strings.Contains(c.Session.RedisPrefix, ":") {
		return errors.New("Session Profile and RedisPrefix must not contain ':'")
	}

	// Events
	if c.Events.Enabled && c.Events.BufferSize <= 0 {
		return errors.New("Events BufferSize must be > 0 when events are enabled")
	}
	if c.Events.EmitTimeout < 0 {
		return errors.New("Events EmitTimeout must be >= 0")
	}

	// Metrics
	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		return errors.New("Metrics EnableLatencyHistograms requires Metrics Enabled")
	}

	// Log
	switch strings.ToLower(c.Log.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("unsupported Log Format %q", c.Log.Format)
	}

	return nil
}
