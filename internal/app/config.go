package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config represents the runtime configuration of the marketplace admin service.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Monitoring  MonitoringConfig  `mapstructure:"monitoring"`
	Features    FeatureConfig     `mapstructure:"features"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
	Seed        SeedConfig        `mapstructure:"seed"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// DatabaseConfig names the process-local in-memory database. A blank name gets a unique one
// at startup.
type DatabaseConfig struct {
	Name  string `mapstructure:"name"`
	Debug bool   `mapstructure:"debug"`
}

// MonitoringConfig enables health checks, metrics and the gauge refresher.
type MonitoringConfig struct {
	Prometheus      PrometheusConfig `mapstructure:"prometheus"`
	Health          HealthConfig     `mapstructure:"health_check"`
	RefreshInterval time.Duration    `mapstructure:"refresh_interval"`
}

// PrometheusConfig toggles metrics endpoints.
type PrometheusConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// HealthConfig toggles health endpoints.
type HealthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// FeatureConfig toggles optional platform features.
type FeatureConfig struct {
	Notifications NotificationConfig `mapstructure:"notifications"`
}

// NotificationConfig toggles notification management and live broadcasting.
type NotificationConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	Broadcast bool `mapstructure:"broadcast"`
}

// MarketplaceConfig carries marketplace business defaults.
type MarketplaceConfig struct {
	Fees FeeConfig `mapstructure:"fees"`
}

// FeeConfig holds the default platform fees applied until an operator saves new ones.
type FeeConfig struct {
	PlatformPercent float64 `mapstructure:"platform_percent"`
	TransactionFee  float64 `mapstructure:"transaction_fee"`
}

// SeedConfig toggles loading the demo dataset at startup.
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig initialises application configuration using Viper with sensible defaults.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.NewWithOptions(viper.ExperimentalBindStruct())
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath("./config")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	v.SetEnvPrefix("MARKETADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if !errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config, decodeHook()); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.cors_origins", []string{})

	v.SetDefault("database.name", "")
	v.SetDefault("database.debug", false)

	v.SetDefault("monitoring.prometheus.enabled", true)
	v.SetDefault("monitoring.prometheus.endpoint", "/metrics")
	v.SetDefault("monitoring.health_check.enabled", true)
	v.SetDefault("monitoring.refresh_interval", "30s")

	v.SetDefault("features.notifications.enabled", true)
	v.SetDefault("features.notifications.broadcast", true)

	v.SetDefault("marketplace.fees.platform_percent", 5.0)
	v.SetDefault("marketplace.fees.transaction_fee", 50.0)

	v.SetDefault("seed.enabled", true)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}
