package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	mappingHTTP "jira-notifier/internal/mapping/delivery/http"
	"jira-notifier/internal/model"
	preferenceHTTP "jira-notifier/internal/preference/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// Jira webhook ingestion
	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/jira", srv.webhookHandler.HandleJiraWebhook)
		srv.l.Infof(ctx, "Jira webhook route registered at POST /webhook/jira")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping Jira webhook route")
	}

	api := srv.gin.Group("/api/v1")

	// Mapping management
	if srv.mappingHandler != nil {
		mappingHTTP.RegisterRoutes(api, srv.mappingHandler)
		srv.l.Infof(ctx, "Mapping routes registered under /api/v1/mappings")
	}

	// Preference management
	if srv.preferenceHandler != nil {
		preferenceHTTP.RegisterRoutes(api, srv.preferenceHandler)
		srv.l.Infof(ctx, "Preference routes registered under /api/v1/preferences")
	}

	// Cache admin
	if srv.cache != nil {
		srv.registerCacheRoutes(api)
		srv.l.Infof(ctx, "Cache admin routes registered under /api/v1/cache")
	}

	return nil
}
