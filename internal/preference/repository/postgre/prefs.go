package postgre

import (
	"context"
	"database/sql"
	"errors"

	repo "jira-notifier/internal/preference/repository"
	"jira-notifier/internal/model"
)

// GetPrefs retrieves the preference record for a channel. Columns are
// nullable on purpose: NULL means the channel never touched that toggle.
func (r *implRepository) GetPrefs(ctx context.Context, channel string) (model.ChannelPrefsRecord, error) {
	const query = `
		SELECT channel,
		       issue_created, issue_deleted, issue_comment, issue_status, issue_state,
		       type_bug, type_task, type_epic, type_story, type_subtask
		FROM jira_channel_prefs
		WHERE channel = $1`

	var rec model.ChannelPrefsRecord
	err := r.db.QueryRowContext(ctx, query, channel).Scan(
		&rec.Channel,
		&rec.IssueCreated, &rec.IssueDeleted, &rec.IssueComment, &rec.IssueStatus, &rec.IssueState,
		&rec.Bug, &rec.Task, &rec.Epic, &rec.Story, &rec.Subtask,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ChannelPrefsRecord{}, repo.ErrPrefsNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPrefs"), err)
		return model.ChannelPrefsRecord{}, repo.ErrFailedToGet
	}
	return rec, nil
}

// UpsertPrefs inserts or replaces the record for rec.Channel.
func (r *implRepository) UpsertPrefs(ctx context.Context, rec model.ChannelPrefsRecord) error {
	const query = `
		INSERT INTO jira_channel_prefs
			(channel,
			 issue_created, issue_deleted, issue_comment, issue_status, issue_state,
			 type_bug, type_task, type_epic, type_story, type_subtask,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (channel) DO UPDATE SET
			issue_created = EXCLUDED.issue_created,
			issue_deleted = EXCLUDED.issue_deleted,
			issue_comment = EXCLUDED.issue_comment,
			issue_status  = EXCLUDED.issue_status,
			issue_state   = EXCLUDED.issue_state,
			type_bug      = EXCLUDED.type_bug,
			type_task     = EXCLUDED.type_task,
			type_epic     = EXCLUDED.type_epic,
			type_story    = EXCLUDED.type_story,
			type_subtask  = EXCLUDED.type_subtask,
			updated_at    = NOW()`

	_, err := r.db.ExecContext(ctx, query,
		rec.Channel,
		rec.IssueCreated, rec.IssueDeleted, rec.IssueComment, rec.IssueStatus, rec.IssueState,
		rec.Bug, rec.Task, rec.Epic, rec.Story, rec.Subtask,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPrefs"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}
