package usecase

import (
	"context"

	"jira-notifier/internal/model"
	"jira-notifier/internal/preference/repository"
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

// mockStore is a function-field mock of the preference Store.
type mockStore struct {
	getFunc    func(channel string) (model.ChannelPrefsRecord, error)
	upsertFunc func(rec model.ChannelPrefsRecord) error

	getCalls int
}

func (s *mockStore) GetPrefs(ctx context.Context, channel string) (model.ChannelPrefsRecord, error) {
	s.getCalls++
	if s.getFunc == nil {
		return model.ChannelPrefsRecord{}, repository.ErrPrefsNotFound
	}
	return s.getFunc(channel)
}

func (s *mockStore) UpsertPrefs(ctx context.Context, rec model.ChannelPrefsRecord) error {
	if s.upsertFunc == nil {
		return nil
	}
	return s.upsertFunc(rec)
}

func boolPtr(v bool) *bool { return &v }
