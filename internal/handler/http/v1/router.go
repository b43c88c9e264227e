package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	// Маршруты для управления предметами (CRUD)
	items := protected.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:id", h.getItem)
		items.PUT("/:id", h.updateItem)
		items.DELETE("/:id", h.deleteItem)
	}

	// Маршруты, через которые устройство сообщает разрешения и координаты
	device := protected.Group("/device")
	{
		device.PUT("/permissions", h.reportPermissions)
		device.POST("/location", h.reportLocation)
	}

	protected.GET("/tracking/status", h.trackingStatus)
	protected.GET("/alerts", h.listAlerts)
	protected.GET("/premium", h.getPremium)
	protected.PUT("/premium", h.setPremium)
	protected.GET("/stats", h.getStats)
}
