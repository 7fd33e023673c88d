package app

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ApplyRuntimeDefaults fills values that must be unique per process and rejects settings the
// services cannot start with. The returned map names every generated key so callers can log it.
func ApplyRuntimeDefaults(cfg *Config) (map[string]bool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	generated := make(map[string]bool)

	if strings.TrimSpace(cfg.Database.Name) == "" {
		cfg.Database.Name = "marketadmin-" + uuid.NewString()
		generated["database.name"] = true
	}

	if endpoint := strings.TrimSpace(cfg.Monitoring.Prometheus.Endpoint); endpoint == "" {
		cfg.Monitoring.Prometheus.Endpoint = "/metrics"
		generated["monitoring.prometheus.endpoint"] = true
	} else if !strings.HasPrefix(endpoint, "/") {
		cfg.Monitoring.Prometheus.Endpoint = "/" + endpoint
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("server.port %d out of range", cfg.Server.Port)
	}

	fees := cfg.Marketplace.Fees
	if fees.PlatformPercent < 0 || fees.PlatformPercent > 100 {
		return nil, fmt.Errorf("marketplace.fees.platform_percent %.2f must be between 0 and 100", fees.PlatformPercent)
	}
	if fees.TransactionFee < 0 {
		return nil, fmt.Errorf("marketplace.fees.transaction_fee %.2f must not be negative", fees.TransactionFee)
	}

	return generated, nil
}

// RefreshSchedule renders the gauge refresh interval as a cron specification.
func (c MonitoringConfig) RefreshSchedule() string {
	if c.RefreshInterval <= 0 {
		return ""
	}
	return "@every " + c.RefreshInterval.String()
}
