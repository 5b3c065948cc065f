package jira_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jira-notifier/pkg/cache"
	"jira-notifier/pkg/jira"
)

func TestClient(t *testing.T) {
	t.Run("Get Issue", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/rest/api/2/issue/TEST-1" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if user, _, ok := r.BasicAuth(); !ok || user != "bot" {
				t.Errorf("expected basic auth user bot")
			}
			w.Write([]byte(`{
				"id": "10001", "key": "TEST-1",
				"fields": {
					"summary": "Broken build",
					"issuetype": {"id": "1", "name": "Bug"},
					"project": {"id": "100", "key": "TEST"},
					"components": [{"id": "c1", "name": "backend"}]
				}
			}`))
		}))
		defer srv.Close()

		client := jira.NewClient(srv.URL, "bot", "token", "github", nil)
		issue, err := client.GetIssue(context.Background(), "TEST-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if issue.Fields.IssueType.Name != "Bug" {
			t.Errorf("expected issue type Bug, got %s", issue.Fields.IssueType.Name)
		}
		if len(issue.Fields.Components) != 1 || issue.Fields.Components[0].ID != "c1" {
			t.Errorf("unexpected components: %v", issue.Fields.Components)
		}
	})

	t.Run("Get Issue Uses Cache On Second Call", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`{"id": "10001", "key": "TEST-1", "fields": {"summary": "x"}}`))
		}))
		defer srv.Close()

		client := jira.NewClient(srv.URL, "bot", "token", "github", cache.New(cache.Config{}))
		for i := 0; i < 3; i++ {
			if _, err := client.GetIssue(context.Background(), "TEST-1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if calls != 1 {
			t.Errorf("expected 1 upstream call, got %d", calls)
		}
	})

	t.Run("Non-200 Is An Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := jira.NewClient(srv.URL, "bot", "token", "github", nil)
		if _, err := client.GetIssue(context.Background(), "TEST-1"); err == nil {
			t.Fatal("expected error on 503")
		}
	})

	t.Run("Get Issue Repos", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/rest/dev-status/latest/issue/detail" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("issueId"); got != "10001" {
				t.Errorf("unexpected issueId: %s", got)
			}
			if got := r.URL.Query().Get("dataType"); got != "repository" {
				t.Errorf("unexpected dataType: %s", got)
			}
			w.Write([]byte(`{"detail": [{"repositories": [{"name": "svc-a"}, {"name": "svc-b"}]}]}`))
		}))
		defer srv.Close()

		client := jira.NewClient(srv.URL, "bot", "token", "github", nil)
		repos, err := client.GetIssueRepos(context.Background(), "10001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repos) != 2 || repos[0] != "svc-a" || repos[1] != "svc-b" {
			t.Errorf("unexpected repos: %v", repos)
		}
	})

	t.Run("No Linked Repos", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"detail": []}`))
		}))
		defer srv.Close()

		client := jira.NewClient(srv.URL, "bot", "token", "github", nil)
		repos, err := client.GetIssueRepos(context.Background(), "10001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repos) != 0 {
			t.Errorf("expected no repos, got %v", repos)
		}
	})
}
