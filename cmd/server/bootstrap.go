package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/api"
	"github.com/charlesng35/marketadmin/internal/app"
	"github.com/charlesng35/marketadmin/internal/database"
	"github.com/charlesng35/marketadmin/internal/monitoring"
	"github.com/charlesng35/marketadmin/internal/monitoring/checks"
	"github.com/charlesng35/marketadmin/internal/notifications"
	"github.com/charlesng35/marketadmin/pkg/logger"
)

// runtimeStack bundles long-lived components used by the HTTP server.
type runtimeStack struct {
	DB        *gorm.DB
	Hub       *notifications.Hub
	Health    *monitoring.HealthManager
	Collector *monitoring.GaugeCollector
	Router    *gin.Engine
}

// bootstrapRuntime initialises the collection store, background jobs, and the HTTP router.
func bootstrapRuntime(cfg *app.Config, log *zap.Logger) (*runtimeStack, error) {
	stack := &runtimeStack{}
	var err error
	success := false

	defer func() {
		if !success {
			stack.Shutdown(context.Background(), log)
		}
	}()

	if debug, _ := os.LookupEnv("GIN_DEBUG"); debug != "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	stack.DB, err = initialiseDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Features.Notifications.Enabled && cfg.Features.Notifications.Broadcast {
		stack.Hub = notifications.NewHub()
	}

	stack.Health = monitoring.NewHealthManager()
	stack.Health.RegisterLiveness(checks.Database(stack.DB, 0))
	stack.Health.RegisterReadiness(checks.Database(stack.DB, 0))
	// keep a nil *Hub out of the interface
	if stack.Hub != nil {
		stack.Health.RegisterLiveness(checks.Notifications(stack.Hub))
	} else {
		stack.Health.RegisterLiveness(checks.Notifications(nil))
	}

	opts := []monitoring.Option{}
	if schedule := cfg.Monitoring.RefreshSchedule(); schedule != "" {
		opts = append(opts, monitoring.WithSchedule(schedule))
	}
	stack.Collector = monitoring.NewGaugeCollector(stack.DB, opts...)
	if err := stack.Collector.Start(); err != nil {
		return nil, fmt.Errorf("start gauge collector: %w", err)
	}

	stack.Router, err = api.NewRouter(api.Dependencies{
		DB:     stack.DB,
		Config: cfg,
		Hub:    stack.Hub,
		Health: stack.Health,
	})
	if err != nil {
		return nil, fmt.Errorf("build api router: %w", err)
	}

	success = true
	return stack, nil
}

// Shutdown stops background jobs and releases the in-memory database.
func (s *runtimeStack) Shutdown(ctx context.Context, log *zap.Logger) {
	if s == nil {
		return
	}

	if s.Collector != nil {
		stopCtx := s.Collector.Stop()
		select {
		case <-stopCtx.Done():
		case <-ctx.Done():
			log.Warn("gauge collector did not stop before shutdown deadline")
		}
	}

	if s.DB != nil {
		if err := database.Close(s.DB); err != nil {
			log.Warn("failed to close database", zap.Error(err))
		}
	}
}

func initialiseDatabase(cfg *app.Config) (*gorm.DB, error) {
	db, err := database.Open(database.Config{
		Name:  cfg.Database.Name,
		Debug: cfg.Database.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	migrate := database.AutoMigrate
	if cfg.Seed.Enabled {
		migrate = database.AutoMigrateAndSeed
	}
	if err := migrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("prepare database: %w", err)
	}

	logger.WithModule("database").Info("in-memory database ready",
		zap.String("name", cfg.Database.Name),
		zap.Bool("seeded", cfg.Seed.Enabled))

	return db, nil
}
