package api

import (
	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/handlers"
)

func registerLedgerRoutes(api *gin.RouterGroup, transactions *handlers.TransactionHandler, settings *handlers.SettingsHandler, dashboard *handlers.DashboardHandler) {
	api.GET("/transactions", transactions.List)
	api.GET("/transactions/fees", transactions.FeeSummary)

	s := api.Group("/settings")
	{
		s.GET("/fees", settings.Fees)
		s.PUT("/fees", settings.UpdateFees)
		s.GET("/terms", settings.Terms)
		s.PUT("/terms", settings.UpdateTerms)
	}

	api.GET("/dashboard", dashboard.Stats)
}
