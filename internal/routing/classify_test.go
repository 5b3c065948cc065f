package routing

import (
	"testing"

	"jira-notifier/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		event model.IssueEvent
		want  model.Category
	}{
		{
			name:  "Comment Created",
			event: model.IssueEvent{Kind: model.EventKindIssueUpdated, Subtype: model.SubtypeCommented, HasComment: true},
			want:  model.CategoryComment,
		},
		{
			name:  "Comment Edited",
			event: model.IssueEvent{Kind: model.EventKindIssueUpdated, Subtype: model.SubtypeCommentEdited, HasComment: true},
			want:  model.CategoryComment,
		},
		{
			name:  "Comment Webhook Kind",
			event: model.IssueEvent{Kind: model.EventKindCommentCreated, Subtype: model.SubtypeCommented, HasComment: true},
			want:  model.CategoryComment,
		},
		{
			name:  "Updated Without Changelog Is A Comment",
			event: model.IssueEvent{Kind: model.EventKindIssueUpdated, Subtype: model.SubtypeUpdated, HasChangelog: false},
			want:  model.CategoryComment,
		},
		{
			name:  "Generic Transition With Changelog",
			event: model.IssueEvent{Kind: model.EventKindIssueUpdated, Subtype: model.SubtypeGeneric, HasChangelog: true},
			want:  model.CategoryStatus,
		},
		{
			name:  "Field Update With Changelog",
			event: model.IssueEvent{Kind: model.EventKindIssueUpdated, Subtype: model.SubtypeUpdated, HasChangelog: true},
			want:  model.CategoryState,
		},
		{
			name:  "Assignment With Changelog",
			event: model.IssueEvent{Kind: model.EventKindIssueUpdated, Subtype: model.SubtypeAssigned, HasChangelog: true},
			want:  model.CategoryState,
		},
		{
			name:  "Changelog Plus Comment Does Not Double Notify",
			event: model.IssueEvent{Kind: model.EventKindIssueUpdated, Subtype: model.SubtypeGeneric, HasChangelog: true, HasComment: true},
			want:  model.CategoryNone,
		},
		{
			name:  "Issue Created",
			event: model.IssueEvent{Kind: model.EventKindIssueCreated, Subtype: model.SubtypeCreated},
			want:  model.CategoryCreated,
		},
		{
			name:  "Issue Deleted",
			event: model.IssueEvent{Kind: model.EventKindIssueDeleted},
			want:  model.CategoryDeleted,
		},
		{
			name:  "Unknown Subtype",
			event: model.IssueEvent{Kind: model.EventKindIssueUpdated, Subtype: model.SubtypeUnknown},
			want:  model.CategoryNone,
		},
		{
			name:  "Unknown Kind",
			event: model.IssueEvent{Kind: "worklog_updated"},
			want:  model.CategoryNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.event); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessageIdentity(t *testing.T) {
	t.Run("Comments Are Addressed By Comment ID", func(t *testing.T) {
		event := model.IssueEvent{IssueKey: "MM-1", CommentID: "10001"}
		got := MessageIdentity(model.CategoryComment, event)
		if got != "jira/issue_commented/MM-1/10001" {
			t.Errorf("unexpected identity %q", got)
		}
	})

	t.Run("Repeated Transitions Share Identity", func(t *testing.T) {
		first := model.IssueEvent{IssueKey: "MM-1", Subtype: model.SubtypeGeneric, Timestamp: 1000}
		second := model.IssueEvent{IssueKey: "MM-1", Subtype: model.SubtypeGeneric, Timestamp: 2000}

		a := MessageIdentity(model.CategoryStatus, first)
		b := MessageIdentity(model.CategoryStatus, second)
		if a != b {
			t.Errorf("expected stable identity across transitions, got %q and %q", a, b)
		}
	})

	t.Run("Categories Do Not Collide", func(t *testing.T) {
		event := model.IssueEvent{IssueKey: "MM-1", Subtype: model.SubtypeCreated}
		created := MessageIdentity(model.CategoryCreated, event)
		deleted := MessageIdentity(model.CategoryDeleted, event)
		if created == deleted {
			t.Errorf("expected distinct identities, both were %q", created)
		}
	})
}
