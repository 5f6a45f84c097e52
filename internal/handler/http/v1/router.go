package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. Health-check открыт,
// остальные маршруты закрыты API-ключом; действующий пользователь
// извлекается из заголовков для мутирующих операций.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger), ActorMiddleware())

	// Маршруты для управления камерами
	cameras := protected.Group("/cameras")
	{
		cameras.GET("", h.listCameras)
		cameras.POST("", h.createCamera)
		cameras.PUT("/:id", h.updateCamera)
		cameras.DELETE("/:id", h.deactivateCamera) // деактивация, камеры не удаляются
		cameras.POST("/:id/favorite", h.toggleCameraFavorite)
	}

	// Маршруты для работы с тревогами
	alerts := protected.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.PUT("/:id/status", h.updateAlertStatus)
		alerts.POST("/:id/notes", h.addAlertNote)
		alerts.GET("/:id/history", h.alertHistory)
		alerts.GET("/:id/perimeter", h.alertPerimeter)
	}

	// Маршруты статистики
	stats := protected.Group("/stats")
	{
		stats.GET("", h.getStats)
		stats.GET("/summary", h.getStatsSummary)
	}

	// Журнал аудита
	protected.GET("/audit", h.listAuditLog)

	// Маршруты для управления пользователями
	users := protected.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.PUT("/:email", h.updateUser)
		users.DELETE("/:email", h.deactivateUser) // деактивация по email
	}

	// Настройки панели
	preferences := protected.Group("/preferences")
	{
		preferences.GET("/:key", h.getPreference)
		preferences.PUT("/:key", h.setPreference)
	}
}
