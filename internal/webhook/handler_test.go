package webhook

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"jira-notifier/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRouting counts routing invocations.
type mockRouting struct {
	calls int32
}

func (m *mockRouting) Route(ctx context.Context, sc model.Scope, event model.IssueEvent) (model.RoutingDecision, error) {
	atomic.AddInt32(&m.calls, 1)
	return model.RoutingDecision{}, nil
}

func newWebhookEngine(cfg SecurityConfig) (*gin.Engine, *mockRouting) {
	gin.SetMode(gin.TestMode)
	rt := &mockRouting{}
	h := NewHandler(rt, cfg, "ws-1", &mockLogger{})

	r := gin.New()
	r.POST("/webhook/jira", h.HandleJiraWebhook)
	return r, rt
}

func postWebhook(r *gin.Engine, body []byte, signature, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/jira", bytes.NewReader(body))
	req.Header.Set("X-Hub-Signature", signature)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleJiraWebhook(t *testing.T) {
	const secret = "topsecret"
	body := []byte(`{"webhookEvent":"jira:issue_updated","issue_event_type_name":"issue_generic","issue":{"id":"10000","key":"MM-1","fields":{"summary":"Fix the widget","issuetype":{"name":"Bug"},"project":{"id":"100"}}},"changelog":{"id":"1"}}`)

	t.Run("Non-Whitelisted Source Is Rejected Despite Valid Signature", func(t *testing.T) {
		r, rt := newWebhookEngine(SecurityConfig{
			Secret:          secret,
			AllowedIPs:      []string{"10.0.0.1"},
			RateLimitPerMin: 600,
		})

		w := postWebhook(r, body, sign(secret, body), "203.0.113.99:41234", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if got := atomic.LoadInt32(&rt.calls); got != 0 {
			t.Errorf("expected no routing pass for a rejected source, got %d", got)
		}
	})

	t.Run("Whitelisted Source Is Accepted", func(t *testing.T) {
		r, _ := newWebhookEngine(SecurityConfig{
			Secret:          secret,
			AllowedIPs:      []string{"10.0.0.1"},
			RateLimitPerMin: 600,
		})

		w := postWebhook(r, body, sign(secret, body), "10.0.0.1:41234", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("CIDR Whitelist Covers The Forwarded Client", func(t *testing.T) {
		r, _ := newWebhookEngine(SecurityConfig{
			Secret:          secret,
			AllowedIPs:      []string{"10.0.0.0/8"},
			RateLimitPerMin: 600,
		})

		w := postWebhook(r, body, sign(secret, body), "127.0.0.1:9999", "10.1.2.3")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Empty Whitelist Admits Any Source", func(t *testing.T) {
		r, _ := newWebhookEngine(SecurityConfig{
			Secret:          secret,
			RateLimitPerMin: 600,
		})

		w := postWebhook(r, body, sign(secret, body), "203.0.113.99:41234", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Bad Signature Still Rejected For Whitelisted Source", func(t *testing.T) {
		r, rt := newWebhookEngine(SecurityConfig{
			Secret:          secret,
			AllowedIPs:      []string{"10.0.0.1"},
			RateLimitPerMin: 600,
		})

		w := postWebhook(r, body, sign("other", body), "10.0.0.1:41234", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if got := atomic.LoadInt32(&rt.calls); got != 0 {
			t.Errorf("expected no routing pass for a bad signature, got %d", got)
		}
	})
}
