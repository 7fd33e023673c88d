package api

import (
	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/handlers"
)

func registerPayoutRoutes(api *gin.RouterGroup, handler *handlers.PayoutHandler) {
	group := api.Group("/payouts")
	{
		group.GET("", handler.List)
		group.POST("", handler.Request)
		group.GET("/:id", handler.Get)
		group.POST("/:id/approve", handler.Approve)
		group.POST("/:id/reject", handler.Reject)
	}
}

func registerDisputeRoutes(api *gin.RouterGroup, handler *handlers.DisputeHandler) {
	group := api.Group("/disputes")
	{
		group.GET("", handler.List)
		group.POST("", handler.Open)
		group.GET("/:id", handler.Get)
		group.PUT("/:id/notes", handler.Annotate)
		group.POST("/:id/resolve", handler.Resolve)
		group.POST("/:id/close", handler.Close)
	}
}
