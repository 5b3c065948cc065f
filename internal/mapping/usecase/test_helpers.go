package usecase

import (
	"context"

	"jira-notifier/internal/mapping/repository"
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

// mockStore is a function-field mock of the mapping Store.
type mockStore struct {
	listFunc             func(opt repository.ListMappingsOptions) ([]model.Mapping, error)
	insertFunc           func(m model.Mapping) error
	setActiveFunc        func(opt repository.SetMappingActiveOptions) (int64, error)
	listRepoChannelsFunc func(repoName string) ([]string, error)

	listCalls int
}

func (s *mockStore) ListMappings(ctx context.Context, opt repository.ListMappingsOptions) ([]model.Mapping, error) {
	s.listCalls++
	if s.listFunc == nil {
		return nil, nil
	}
	return s.listFunc(opt)
}

func (s *mockStore) InsertMapping(ctx context.Context, m model.Mapping) error {
	if s.insertFunc == nil {
		return nil
	}
	return s.insertFunc(m)
}

func (s *mockStore) SetMappingActive(ctx context.Context, opt repository.SetMappingActiveOptions) (int64, error) {
	if s.setActiveFunc == nil {
		return 1, nil
	}
	return s.setActiveFunc(opt)
}

func (s *mockStore) ListRepoChannels(ctx context.Context, repoName string) ([]string, error) {
	if s.listRepoChannelsFunc == nil {
		return nil, nil
	}
	return s.listRepoChannelsFunc(repoName)
}
