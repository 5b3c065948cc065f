package httpserver

import (
	"github.com/gin-gonic/gin"

	"jira-notifier/pkg/response"
)

func (srv HTTPServer) registerCacheRoutes(api *gin.RouterGroup) {
	cacheGroup := api.Group("/cache")
	{
		cacheGroup.GET("/stats", srv.cacheStats)
		cacheGroup.POST("/flush", srv.cacheFlush)
		cacheGroup.DELETE("/keys/:key", srv.cacheInvalidate)
	}
}

// cacheStats handles cache statistics requests
// @Summary Cache Statistics
// @Description Returns hit/miss counters and approximate memory usage of the TTL cache
// @Tags Cache
// @Produce json
// @Success 200 {object} cache.Stats
// @Router /api/v1/cache/stats [get]
func (srv HTTPServer) cacheStats(c *gin.Context) {
	response.OK(c, srv.cache.Stats())
}

// cacheFlush drops every cache entry
// @Summary Flush Cache
// @Description Removes all cached entries. Lookups repopulate lazily.
// @Tags Cache
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/cache/flush [post]
func (srv HTTPServer) cacheFlush(c *gin.Context) {
	srv.cache.Flush()
	srv.l.Infof(c.Request.Context(), "cache flushed via admin endpoint")
	response.OK(c, nil)
}

// cacheInvalidate deletes a single cache key
// @Summary Invalidate Cache Key
// @Description Deletes one cache key. Idempotent; removing an absent key reports zero removed.
// @Tags Cache
// @Param key path string true "Cache key"
// @Produce json
// @Success 200 {object} map[string]int
// @Router /api/v1/cache/keys/{key} [delete]
func (srv HTTPServer) cacheInvalidate(c *gin.Context) {
	removed := srv.cache.Delete(c.Param("key"))
	response.OK(c, gin.H{"removed": removed})
}
