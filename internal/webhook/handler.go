package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jira-notifier/internal/model"
	"jira-notifier/internal/routing"
	pkgResponse "jira-notifier/pkg/response"
)

// routeTimeout bounds one background routing pass, covering the mapping
// lookups, preference fetches and the chat API round-trips.
const routeTimeout = 2 * time.Minute

// HandleJiraWebhook processes Jira issue webhook events
func (h *Handler) HandleJiraWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Source IP whitelist, when configured
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Jira webhook rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "source address not allowed"})
		return
	}

	// Read body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Verify signature
	signature := c.GetHeader("X-Hub-Signature")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Jira signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	// Check rate limit
	if err := h.security.CheckRateLimit("jira"); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	// Parse event
	event, err := h.parser.ParseIssueEvent(body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse Jira event: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Route in background
	go h.routeAsync(*event)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// routeAsync runs the routing pass detached from the inbound request, so
// Jira gets its acknowledgment before any chat API call happens.
func (h *Handler) routeAsync(event model.IssueEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), routeTimeout)
	defer cancel()

	sc := model.Scope{UserID: "system_webhook", WorkspaceID: h.workspace}
	decision, err := h.routingUC.Route(ctx, sc, event)
	if err != nil {
		// Retry policy lives with Jira's webhook delivery; we only log.
		if errors.Is(err, routing.ErrLookupFailed) {
			h.l.Errorf(ctx, "Routing %s failed on lookup, event dropped this delivery: %v", event.IssueKey, err)
			return
		}
		h.l.Errorf(ctx, "Routing %s failed: %v", event.IssueKey, err)
		return
	}

	if decision.Empty() {
		h.l.Debugf(ctx, "Event on %s routed to no channels", event.IssueKey)
		return
	}
	h.l.Infof(ctx, "Event on %s routed to %d channel(s) as %s", event.IssueKey, len(decision.Channels), decision.MessageID)
}
