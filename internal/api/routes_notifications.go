package api

import (
	"github.com/gin-gonic/gin"

	"github.com/charlesng35/marketadmin/internal/handlers"
)

func registerNotificationRoutes(api *gin.RouterGroup, handler *handlers.NotificationHandler) {
	group := api.Group("/notifications")
	{
		group.GET("", handler.List)
		group.POST("", handler.Create)
		group.GET("/stream", handler.Stream)
		group.GET("/:id", handler.Get)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
		group.POST("/:id/toggle", handler.Toggle)
		group.POST("/:id/send", handler.Send)
	}

	tpl := api.Group("/notification-templates")
	{
		tpl.GET("", handler.ListTemplates)
		tpl.GET("/:key", handler.GetTemplate)
		tpl.POST("/:key/preview", handler.PreviewTemplate)
	}
}
