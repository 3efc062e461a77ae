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
	RateLimit  RateLimitConfig

	// Catalog specifics
	Catalog CatalogConfig
	Session SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxSources      int
	SourceRetention time.Duration
}

// CatalogConfig configures the catalog engine.
type CatalogConfig struct {
	// Locale is the BCP 47 tag used to collate item names (e.g. "vi", "en").
	Locale       string
	PresetImages []PresetImageConfig
}

// PresetImageConfig is one entry of the image picker offered to clients.
type PresetImageConfig struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
}

// SessionConfig bounds the table of held view parameters.
type SessionConfig struct {
	MaxEntries int
	TTL        time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxSources = viper.GetInt("rate_limit.max_sources")
	cfg.RateLimit.SourceRetention = viper.GetDuration("rate_limit.source_retention")

	// Catalog
	cfg.Catalog.Locale = viper.GetString("catalog.locale")
	if err := viper.UnmarshalKey("catalog.preset_images", &cfg.Catalog.PresetImages); err != nil {
		return nil, fmt.Errorf("error decoding catalog.preset_images: %w", err)
	}

	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")
	cfg.Session.TTL = viper.GetDuration("session.ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("rate_limit.max_sources", 1000)
	viper.SetDefault("rate_limit.source_retention", "5m")

	viper.SetDefault("catalog.locale", "vi")
	viper.SetDefault("catalog.preset_images", defaultPresetImages())

	viper.SetDefault("session.max_entries", 1024)
	viper.SetDefault("session.ttl", "24h")
}

// defaultPresetImages mirrors the bundled product images of the web client.
func defaultPresetImages() []map[string]string {
	return []map[string]string{
		{"name": "Abbott Grow", "path": "/assets/images/abbott-grow.jpg"},
		{"name": "Cô Gái Hà Lan", "path": "/assets/images/co-gai-ha-lan.jpg"},
		{"name": "Enlene", "path": "/assets/images/enlene.jpg"},
		{"name": "Ensure UC", "path": "/assets/images/ensure-uc.jpg"},
		{"name": "Hofumil (Hàng giả)", "path": "/assets/images/hofumil-fake.webp"},
		{"name": "Nitrogen (Hàng giả)", "path": "/assets/images/nitrogen-fake.jpeg"},
		{"name": "Nutifood Grow Plus", "path": "/assets/images/nutifood-grow-plus.jpg"},
		{"name": "Soramilk (Hàng giả)", "path": "/assets/images/soramilk-fake.jpg"},
		{"name": "Sure IQ (Hàng giả)", "path": "/assets/images/sure-iq-fake.jpg"},
		{"name": "TH True Milk", "path": "/assets/images/th-true-milk.jpeg"},
	}
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Session.MaxEntries <= 0 {
		return fmt.Errorf("session.max_entries must be positive, got %d", cfg.Session.MaxEntries)
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	for i, img := range cfg.Catalog.PresetImages {
		if strings.TrimSpace(img.Path) == "" {
			return fmt.Errorf("catalog.preset_images[%d]: path is required", i)
		}
	}
	return nil
}
