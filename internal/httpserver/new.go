package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	mappingHTTP "jira-notifier/internal/mapping/delivery/http"
	preferenceHTTP "jira-notifier/internal/preference/delivery/http"
	"jira-notifier/pkg/cache"
	"jira-notifier/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Jira webhook ingestion
	webhookHandler interface {
		HandleJiraWebhook(c *gin.Context)
	}

	// Management domains
	mappingHandler    mappingHTTP.Handler
	preferenceHandler preferenceHTTP.Handler

	// Cache admin endpoints
	cache cache.Cache
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Jira webhook ingestion
	WebhookHandler interface {
		HandleJiraWebhook(c *gin.Context)
	}

	// Management domains
	MappingHandler    mappingHTTP.Handler
	PreferenceHandler preferenceHTTP.Handler

	// Cache admin endpoints
	Cache cache.Cache
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.Default(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		webhookHandler:    cfg.WebhookHandler,
		mappingHandler:    cfg.MappingHandler,
		preferenceHandler: cfg.PreferenceHandler,
		cache:             cfg.Cache,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
