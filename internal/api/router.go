package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/app"
	"github.com/charlesng35/marketadmin/internal/handlers"
	"github.com/charlesng35/marketadmin/internal/middleware"
	"github.com/charlesng35/marketadmin/internal/monitoring"
	"github.com/charlesng35/marketadmin/internal/notifications"
	"github.com/charlesng35/marketadmin/internal/services"
	"github.com/charlesng35/marketadmin/internal/templates"
)

// Dependencies are the collaborators the router wires into handlers. Hub and Health are
// optional: a nil Hub disables notification streaming and broadcasting, a nil Health
// disables the probe endpoints.
type Dependencies struct {
	DB     *gorm.DB
	Config *app.Config
	Hub    *notifications.Hub
	Health *monitoring.HealthManager
}

// NewRouter builds the Gin engine, wires middleware and registers every route.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.DB == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if deps.Config == nil {
		return nil, fmt.Errorf("config must be provided")
	}
	cfg := deps.Config

	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.Server.CORSOrigins...))

	registerHealthRoutes(r, cfg, deps.Health)

	api := r.Group("/api")

	if cfg.Features.Notifications.Enabled {
		// A typed nil *Hub must not reach the Broadcaster interface.
		var broadcaster services.Broadcaster
		if deps.Hub != nil {
			broadcaster = deps.Hub
		}
		notificationSvc, err := services.NewNotificationService(deps.DB, templates.DefaultStore(), broadcaster)
		if err != nil {
			return nil, err
		}
		registerNotificationRoutes(api, handlers.NewNotificationHandler(notificationSvc, deps.Hub))
	}

	payoutSvc, err := services.NewPayoutService(deps.DB)
	if err != nil {
		return nil, err
	}
	registerPayoutRoutes(api, handlers.NewPayoutHandler(payoutSvc))

	disputeSvc, err := services.NewDisputeService(deps.DB)
	if err != nil {
		return nil, err
	}
	registerDisputeRoutes(api, handlers.NewDisputeHandler(disputeSvc))

	userSvc, err := services.NewUserService(deps.DB)
	if err != nil {
		return nil, err
	}
	listingSvc, err := services.NewListingService(deps.DB)
	if err != nil {
		return nil, err
	}
	affiliateSvc, err := services.NewAffiliateService(deps.DB)
	if err != nil {
		return nil, err
	}
	registerModerationRoutes(api,
		handlers.NewUserHandler(userSvc),
		handlers.NewListingHandler(listingSvc),
		handlers.NewAffiliateHandler(affiliateSvc),
	)

	transactionSvc, err := services.NewTransactionService(deps.DB)
	if err != nil {
		return nil, err
	}
	settingsSvc, err := services.NewSettingsService(deps.DB, services.FeeSettings{
		PlatformPercent: cfg.Marketplace.Fees.PlatformPercent,
		TransactionFee:  cfg.Marketplace.Fees.TransactionFee,
	})
	if err != nil {
		return nil, err
	}
	dashboardSvc, err := services.NewDashboardService(deps.DB)
	if err != nil {
		return nil, err
	}
	registerLedgerRoutes(api,
		handlers.NewTransactionHandler(transactionSvc),
		handlers.NewSettingsHandler(settingsSvc),
		handlers.NewDashboardHandler(dashboardSvc),
	)

	if cfg.Monitoring.Prometheus.Enabled {
		r.GET(cfg.Monitoring.Prometheus.Endpoint, gin.WrapH(promhttp.Handler()))
	}

	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
