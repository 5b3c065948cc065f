package http

import (
	"github.com/gin-gonic/gin"

	"jira-notifier/internal/preference"
	"jira-notifier/pkg/log"
)

// Handler is the public interface for the preference HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	Set(c *gin.Context)
}

type handler struct {
	l                log.Logger
	uc               preference.UseCase
	defaultWorkspace string
}

// New creates a new HTTP handler for the preference domain.
func New(l log.Logger, uc preference.UseCase, defaultWorkspace string) Handler {
	return &handler{
		l:                l,
		uc:               uc,
		defaultWorkspace: defaultWorkspace,
	}
}
