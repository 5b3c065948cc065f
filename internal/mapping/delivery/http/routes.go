package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	mappings := rg.Group("/mappings")
	{
		mappings.POST("", h.Create)
		mappings.GET("", h.List)
		mappings.DELETE("", h.Remove)
	}
}
