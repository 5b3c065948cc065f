package http

import (
	"github.com/gin-gonic/gin"

	"jira-notifier/internal/mapping"
	"jira-notifier/pkg/log"
)

// Handler is the public interface for the mapping HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Remove(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l                log.Logger
	uc               mapping.UseCase
	defaultWorkspace string
}

// New creates a new HTTP handler for the mapping domain.
func New(l log.Logger, uc mapping.UseCase, defaultWorkspace string) Handler {
	return &handler{
		l:                l,
		uc:               uc,
		defaultWorkspace: defaultWorkspace,
	}
}
