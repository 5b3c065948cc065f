package usecase

import (
	"context"

	"jira-notifier/internal/mapping"
	"jira-notifier/internal/model"
	"jira-notifier/internal/notify"
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

// mockLookup is a function-field mock of mapping.Lookup.
type mockLookup struct {
	projectFunc   func(projectID string) ([]string, error)
	componentFunc func(projectID, componentID string) ([]string, error)
	repoFunc      func(repoName string) ([]string, error)
}

func (m *mockLookup) MappingsFor(ctx context.Context, sc model.Scope, filter mapping.Filter) ([]model.Mapping, error) {
	return nil, nil
}

func (m *mockLookup) ActiveProjectChannels(ctx context.Context, sc model.Scope, projectID string) ([]string, error) {
	if m.projectFunc == nil {
		return nil, nil
	}
	return m.projectFunc(projectID)
}

func (m *mockLookup) ActiveComponentChannels(ctx context.Context, sc model.Scope, projectID, componentID string) ([]string, error) {
	if m.componentFunc == nil {
		return nil, nil
	}
	return m.componentFunc(projectID, componentID)
}

func (m *mockLookup) RepoChannels(ctx context.Context, sc model.Scope, repoName string) ([]string, error) {
	if m.repoFunc == nil {
		return nil, nil
	}
	return m.repoFunc(repoName)
}

func (m *mockLookup) Invalidate(sc model.Scope, row model.Mapping) {}

// mockResolver is a function-field mock of preference.Resolver.
type mockResolver struct {
	prefsFunc func(channel string) (model.ChannelPrefs, error)
}

func (m *mockResolver) PreferencesFor(ctx context.Context, sc model.Scope, channel string) (model.ChannelPrefs, error) {
	if m.prefsFunc == nil {
		return model.DefaultChannelPrefs(channel), nil
	}
	return m.prefsFunc(channel)
}

// mockDynamic is a function-field mock of routing.DynamicChannelSource.
type mockDynamic struct {
	channelsFunc func(event model.IssueEvent) ([]string, error)
}

func (m *mockDynamic) ChannelsFor(ctx context.Context, sc model.Scope, event model.IssueEvent) ([]string, error) {
	if m.channelsFunc == nil {
		return nil, nil
	}
	return m.channelsFunc(event)
}

// mockSender counts sends and records the last input.
type mockSender struct {
	sendFunc func(input notify.SendInput) (notify.SendOutput, error)

	calls int
	last  notify.SendInput
}

func (m *mockSender) Send(ctx context.Context, sc model.Scope, input notify.SendInput) (notify.SendOutput, error) {
	m.calls++
	m.last = input
	if m.sendFunc == nil {
		return notify.SendOutput{Posted: len(input.Channels)}, nil
	}
	return m.sendFunc(input)
}

func boolPtr(v bool) *bool { return &v }
