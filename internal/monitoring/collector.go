package monitoring

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/models"
	"github.com/charlesng35/marketadmin/pkg/logger"
	"github.com/charlesng35/marketadmin/pkg/metrics"
)

const defaultRefreshSpec = "@every 30s"

// Gauge is the subset of prometheus.Gauge the collector writes to.
type Gauge interface {
	Set(float64)
}

// GaugeCollector periodically recomputes backlog gauges from the owned collections. It only
// reads; domain state is never mutated from the scheduler.
type GaugeCollector struct {
	db       *gorm.DB
	cron     *cron.Cron
	schedule string
	log      *zap.Logger
	gauges   []gaugeQuery
}

type gaugeQuery struct {
	name  string
	gauge Gauge
	model any
	where string
	arg   any
}

// Option customises the GaugeCollector.
type Option func(*GaugeCollector)

// WithCron injects a preconfigured cron instance, primarily for testing.
func WithCron(c *cron.Cron) Option {
	return func(collector *GaugeCollector) {
		if c != nil {
			collector.cron = c
		}
	}
}

// WithSchedule overrides the cron specification of the refresh job.
func WithSchedule(spec string) Option {
	return func(collector *GaugeCollector) {
		if spec != "" {
			collector.schedule = spec
		}
	}
}

// WithGauges replaces the gauges written by the collector, in the order pending payouts,
// open disputes, active notifications.
func WithGauges(pendingPayouts, openDisputes, activeNotifications Gauge) Option {
	return func(collector *GaugeCollector) {
		collector.gauges[0].gauge = pendingPayouts
		collector.gauges[1].gauge = openDisputes
		collector.gauges[2].gauge = activeNotifications
	}
}

// NewGaugeCollector constructs a collector writing to the process-wide gauges.
func NewGaugeCollector(db *gorm.DB, opts ...Option) *GaugeCollector {
	collector := &GaugeCollector{
		db:       db,
		schedule: defaultRefreshSpec,
		log:      logger.WithModule("monitoring"),
		gauges: []gaugeQuery{
			{"pending payouts", metrics.PendingPayouts, &models.PayoutRequest{}, "status = ?", models.PayoutPending},
			{"open disputes", metrics.OpenDisputes, &models.Dispute{}, "status = ?", models.DisputeOpen},
			{"active notifications", metrics.ActiveNotifications, &models.Notification{}, "active = ?", true},
		},
	}

	for _, opt := range opts {
		opt(collector)
	}

	if collector.cron == nil {
		collector.cron = cron.New(cron.WithLogger(cron.DiscardLogger))
	}
	return collector
}

// Start refreshes the gauges once and schedules periodic refreshes.
func (c *GaugeCollector) Start() error {
	if c.db == nil {
		return errors.New("gauge collector: db is required")
	}
	if err := c.RunOnce(context.Background()); err != nil {
		c.log.Warn("initial gauge refresh failed", zap.Error(err))
	}

	if _, err := c.cron.AddFunc(c.schedule, func() {
		if err := c.RunOnce(context.Background()); err != nil {
			c.log.Warn("gauge refresh failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("gauge collector: schedule %q: %w", c.schedule, err)
	}

	c.cron.Start()
	return nil
}

// Stop halts the scheduler. The returned context is done once running jobs finish.
func (c *GaugeCollector) Stop() context.Context {
	return c.cron.Stop()
}

// RunOnce recomputes every gauge, continuing past failures and returning them combined.
func (c *GaugeCollector) RunOnce(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var errs error
	for _, q := range c.gauges {
		if q.gauge == nil {
			continue
		}
		var count int64
		if err := c.db.WithContext(ctx).Model(q.model).Where(q.where, q.arg).Count(&count).Error; err != nil {
			errs = multierr.Append(errs, fmt.Errorf("count %s: %w", q.name, err))
			continue
		}
		q.gauge.Set(float64(count))
	}
	return errs
}
