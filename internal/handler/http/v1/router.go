package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты сессии панели
	sessions := api.Group("/sessions")
	{
		sessions.POST("", h.openSession)
		sessions.GET("/:sid", h.getSession)
		sessions.DELETE("/:sid", h.closeSession)

		sessions.GET("/:sid/incidents", h.listIncidents)

		sessions.GET("/:sid/reports", h.listReports)
		sessions.POST("/:sid/reports", h.submitReport)
		sessions.GET("/:sid/reports/recent", h.recentReports)
		sessions.GET("/:sid/reports/export", h.exportReports)
		sessions.GET("/:sid/reports/:id/photo", h.getReportPhoto)

		sessions.GET("/:sid/notifications", h.listNotifications)
		sessions.POST("/:sid/notifications/read-all", h.markAllNotificationsRead)
		sessions.POST("/:sid/emergency", h.triggerEmergency)

		sessions.GET("/:sid/profile", h.getProfile)
	}

	// Маршруты администратора, только по API-ключу
	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("/sessions/:sid/stats", h.getStats)
		admin.POST("/sessions/:sid/reports/:id/resolve", h.resolveReport)
		admin.DELETE("/sessions/:sid/reports/:id", h.deleteReport)
	}

	api.GET("/location", h.getLocation)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
