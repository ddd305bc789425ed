package http

import "github.com/gin-gonic/gin"

// Register attaches the page and API routes. limit, when given, wraps
// every mutating route.
func (h *Handler) Register(r gin.IRouter, limit ...gin.HandlerFunc) {
	mutating := func(hf gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, limit...), hf)
	}

	r.GET("/", h.index)

	api := r.Group("/api")
	api.GET("/project", h.getProject)
	api.POST("/project", mutating(h.saveProject)...)
	api.GET("/project/validate", h.validate)
	api.GET("/project/export", h.export)
	api.GET("/layer-types", h.layerTypes)
	api.GET("/templates", h.listTemplates)
	api.POST("/project/template/:name", mutating(h.loadTemplate)...)

	api.POST("/layer", mutating(h.addLayer)...)
	api.GET("/layer/:id", h.getLayer)
	api.GET("/layer/:id/references", h.references)
	api.PUT("/layer/:id", mutating(h.updateLayer)...)
	api.DELETE("/layer/:id", mutating(h.deleteLayer)...)
}
