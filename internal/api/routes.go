package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postgen/postgen/internal/render"
)

// NewRouter builds the gin engine serving the render API.
func NewRouter(r *render.Renderer, log *zap.Logger) *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery(), requestID(), accessLog(log))
	RegisterRoutes(e, &Handler{renderer: r, log: log})
	return e
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/templates", h.templates)
		api.POST("/preview", h.preview)
		api.POST("/export", h.export)
		api.GET("/qr", qrHandler)
		api.POST("/qr/brand", brandQR)
	}
}
