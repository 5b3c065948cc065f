package webhook

import (
	"jira-notifier/internal/routing"
	pkgLog "jira-notifier/pkg/log"
)

type Handler struct {
	routingUC routing.UseCase
	security  *SecurityValidator
	parser    *JiraWebhookParser
	workspace string
	l         pkgLog.Logger
}

func NewHandler(
	routingUC routing.UseCase,
	securityConfig SecurityConfig,
	workspace string,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		routingUC: routingUC,
		security:  NewSecurityValidator(securityConfig),
		parser:    NewJiraParser(),
		workspace: workspace,
		l:         l,
	}
}
