package usecase

import (
	"context"
	"fmt"
	"sync"

	"jira-notifier/internal/model"
	"jira-notifier/internal/routing"
	"jira-notifier/pkg/jira"
)

// RepoChannelLookup resolves a repository name to its mapped channels.
type RepoChannelLookup func(ctx context.Context, sc model.Scope, repoName string) ([]string, error)

type dynamicSource struct {
	jira  jira.API
	repos RepoChannelLookup
}

// NewDynamicSource builds the repository-linked channel source: the issue
// tracker names the repositories linked to an issue, the lookup maps each
// name to channels.
func NewDynamicSource(api jira.API, repos RepoChannelLookup) routing.DynamicChannelSource {
	return &dynamicSource{jira: api, repos: repos}
}

func (s *dynamicSource) ChannelsFor(ctx context.Context, sc model.Scope, event model.IssueEvent) ([]string, error) {
	repoNames, err := s.jira.GetIssueRepos(ctx, event.IssueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked repos for issue %s: %w", event.IssueKey, err)
	}
	if len(repoNames) == 0 {
		return nil, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		channels []string
		firstErr error
	)
	for _, name := range repoNames {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			found, err := s.repos(ctx, sc, name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to resolve channels for repo %s: %w", name, err)
				}
				return
			}
			channels = append(channels, found...)
		}(name)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return channels, nil
}
