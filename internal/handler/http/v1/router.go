package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	verification := api.Group("/verification")

	// Health-check открыт: его опрашивают балансировщики
	verification.GET("/health", h.healthCheck)

	// Остальные маршруты требуют API-ключ
	secured := verification.Group("")
	secured.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		secured.POST("/report", h.submitReport)
		secured.GET("/report/:id", h.getVerification)
		secured.POST("/report/:id/rerun", h.rerun)
		secured.POST("/report/:id/approve", h.approve)
		secured.POST("/report/:id/reject", h.reject)
		secured.POST("/report/:id/claim", h.claimEntry)
		secured.POST("/report/:id/release", h.releaseEntry)
		secured.POST("/report/:id/investigate", h.investigate)

		secured.GET("/queue", h.listQueue)
	}
}
