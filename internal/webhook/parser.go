package webhook

import (
	"encoding/json"
	"fmt"
	"time"

	"jira-notifier/internal/model"
)

// JiraWebhookParser parses Jira webhook payloads into issue events. The
// free-form issue_event_type_name is mapped to the subtype enum here, at
// the ingestion boundary, and never pattern-matched again downstream.
type JiraWebhookParser struct{}

func NewJiraParser() *JiraWebhookParser {
	return &JiraWebhookParser{}
}

// ParseIssueEvent parses any of the issue lifecycle webhooks, including
// standalone comment_created events.
func (p *JiraWebhookParser) ParseIssueEvent(payload []byte) (*model.IssueEvent, error) {
	var body jiraPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("failed to parse jira event: %w", err)
	}
	if body.WebhookEvent == "" {
		return nil, fmt.Errorf("payload carries no webhookEvent")
	}

	event := &model.IssueEvent{
		Kind:         model.WebhookEventKind(body.WebhookEvent),
		Subtype:      model.ParseEventSubtype(body.IssueEventTypeName),
		RawSubtype:   body.IssueEventTypeName,
		IssueID:      body.Issue.ID,
		IssueKey:     body.Issue.Key,
		IssueSelf:    body.Issue.Self,
		Summary:      body.Issue.Fields.Summary,
		IssueType:    body.Issue.Fields.IssueType.Name,
		ProjectID:    body.Issue.Fields.Project.ID,
		HasChangelog: body.Changelog != nil,
		HasComment:   body.Comment != nil,
		Timestamp:    body.Timestamp,
		ReceivedAt:   time.Now(),
	}

	for _, c := range body.Issue.Fields.Components {
		event.ComponentIDs = append(event.ComponentIDs, c.ID)
	}
	if body.Comment != nil {
		event.CommentID = body.Comment.ID
	}

	// Standalone comment webhooks omit issue_event_type_name.
	if event.Kind == model.EventKindCommentCreated && event.Subtype == model.SubtypeUnknown {
		event.Subtype = model.SubtypeCommented
	}

	return event, nil
}
