package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	prefs := rg.Group("/preferences")
	{
		prefs.GET("/:channel", h.Get)
		prefs.PUT("/:channel", h.Set)
	}
}
