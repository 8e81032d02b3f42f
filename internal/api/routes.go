package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.POST("/render/full", h.renderFull)
		api.POST("/render/preview", h.renderPreview)
		api.POST("/template/resolve", h.resolveTemplate)
		api.GET("/guides", h.guides)
		api.GET("/qr", h.qr)
	}
}
