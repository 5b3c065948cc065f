package slack

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"jira-notifier/internal/model"
	"jira-notifier/internal/notify"
	"jira-notifier/pkg/cache"
)

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

type mockMessenger struct {
	postFunc   func(channel, text string) (string, error)
	updateFunc func(channel, ts, text string) error

	posts   int
	updates int
}

func (m *mockMessenger) PostMessage(ctx context.Context, channel, text string) (string, error) {
	m.posts++
	if m.postFunc == nil {
		return fmt.Sprintf("ts-%s-%d", channel, m.posts), nil
	}
	return m.postFunc(channel, text)
}

func (m *mockMessenger) UpdateMessage(ctx context.Context, channel, ts, text string) error {
	m.updates++
	if m.updateFunc == nil {
		return nil
	}
	return m.updateFunc(channel, ts, text)
}

var testScope = model.Scope{WorkspaceID: "ws-1"}

func TestSend(t *testing.T) {
	t.Run("First Delivery Posts Fresh", func(t *testing.T) {
		client := &mockMessenger{}
		s := New(&mockLogger{}, client, cache.New(cache.Config{}))

		out, err := s.Send(context.Background(), testScope, notify.SendInput{
			Channels:  []string{"dev", "ops"},
			Text:      "MM-1 moved to In Progress",
			MessageID: "jira/issue_updated/MM-1/updated",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Posted != 2 || out.Updated != 0 {
			t.Errorf("expected 2 posts, got %+v", out)
		}
	})

	t.Run("Same Identity Updates In Place", func(t *testing.T) {
		client := &mockMessenger{}
		s := New(&mockLogger{}, client, cache.New(cache.Config{}))

		input := notify.SendInput{
			Channels:  []string{"dev"},
			Text:      "MM-1 moved to In Progress",
			MessageID: "jira/issue_updated/MM-1/updated",
		}
		s.Send(context.Background(), testScope, input)

		input.Text = "MM-1 moved to Done"
		out, err := s.Send(context.Background(), testScope, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Posted != 0 || out.Updated != 1 {
			t.Errorf("expected 1 update, got %+v", out)
		}
		if client.posts != 1 || client.updates != 1 {
			t.Errorf("expected one post then one update, got %d posts %d updates", client.posts, client.updates)
		}
	})

	t.Run("Different Identities Post Separately", func(t *testing.T) {
		client := &mockMessenger{}
		s := New(&mockLogger{}, client, cache.New(cache.Config{}))

		s.Send(context.Background(), testScope, notify.SendInput{
			Channels: []string{"dev"}, Text: "a", MessageID: "jira/issue_commented/MM-1/10001",
		})
		out, _ := s.Send(context.Background(), testScope, notify.SendInput{
			Channels: []string{"dev"}, Text: "b", MessageID: "jira/issue_commented/MM-1/10002",
		})
		if out.Posted != 1 || out.Updated != 0 {
			t.Errorf("expected a fresh post for the new identity, got %+v", out)
		}
	})

	t.Run("One Failing Channel Does Not Block The Rest", func(t *testing.T) {
		client := &mockMessenger{
			postFunc: func(channel, text string) (string, error) {
				if channel == "broken" {
					return "", errors.New("channel_not_found")
				}
				return "ts-1", nil
			},
		}
		s := New(&mockLogger{}, client, cache.New(cache.Config{}))

		out, err := s.Send(context.Background(), testScope, notify.SendInput{
			Channels: []string{"broken", "dev"}, Text: "x", MessageID: "id",
		})
		if err != nil {
			t.Fatalf("partial failure should not surface as error, got %v", err)
		}
		if out.Posted != 1 {
			t.Errorf("expected the healthy channel to be posted, got %+v", out)
		}
	})

	t.Run("Total Failure Surfaces", func(t *testing.T) {
		client := &mockMessenger{
			postFunc: func(channel, text string) (string, error) {
				return "", errors.New("invalid_auth")
			},
		}
		s := New(&mockLogger{}, client, cache.New(cache.Config{}))

		if _, err := s.Send(context.Background(), testScope, notify.SendInput{
			Channels: []string{"dev", "ops"}, Text: "x", MessageID: "id",
		}); err == nil {
			t.Error("expected error when every channel fails")
		}
	})

	t.Run("Nil Cache Always Posts Fresh", func(t *testing.T) {
		client := &mockMessenger{}
		s := New(&mockLogger{}, client, nil)

		input := notify.SendInput{Channels: []string{"dev"}, Text: "x", MessageID: "id"}
		s.Send(context.Background(), testScope, input)
		out, _ := s.Send(context.Background(), testScope, input)
		if out.Posted != 1 || out.Updated != 0 {
			t.Errorf("expected fresh post without cache, got %+v", out)
		}
	})
}
