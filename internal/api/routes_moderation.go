package api

import (
	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/handlers"
)

func registerModerationRoutes(api *gin.RouterGroup, users *handlers.UserHandler, listings *handlers.ListingHandler, affiliates *handlers.AffiliateHandler) {
	u := api.Group("/users")
	{
		u.GET("", users.List)
		u.GET("/:id", users.Get)
		u.POST("/:id/suspend", users.Suspend)
		u.POST("/:id/deactivate", users.Deactivate)
		u.POST("/:id/restore", users.Restore)
		u.DELETE("/:id", users.Delete)
	}

	l := api.Group("/listings")
	{
		l.GET("", listings.List)
		l.GET("/:id", listings.Get)
		l.POST("/:id/approve", listings.Approve)
		l.POST("/:id/hide", listings.Hide)
		l.POST("/:id/remove", listings.Remove)
		l.POST("/:id/feature", listings.ToggleFeatured)
	}

	a := api.Group("/affiliates")
	{
		a.GET("", affiliates.List)
		a.GET("/:id", affiliates.Get)
		a.POST("/:id/toggle", affiliates.ToggleStatus)
		a.PUT("/:id/commission", affiliates.UpdateCommission)
	}
}
