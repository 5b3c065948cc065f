package postgre

import (
	"context"
	"fmt"
	"strings"

	repo "jira-notifier/internal/mapping/repository"
	"jira-notifier/internal/model"
)

// ListMappings retrieves mapping rows matching the filter. Component-less
// project mappings are stored with component_id = ''.
func (r *implRepository) ListMappings(ctx context.Context, opt repo.ListMappingsOptions) ([]model.Mapping, error) {
	where, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`
		SELECT id, channel, project_id, component_id, active, created_at, updated_at
		FROM jira_channel_mappings
		WHERE %s
		ORDER BY created_at ASC`, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMappings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	mappings := make([]model.Mapping, 0)
	for rows.Next() {
		var m model.Mapping
		if err := rows.Scan(&m.ID, &m.Channel, &m.ProjectID, &m.ComponentID, &m.Active, &m.CreatedAt, &m.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListMappings"), err)
			return nil, repo.ErrFailedToList
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListMappings"), err)
		return nil, repo.ErrFailedToList
	}
	return mappings, nil
}

// InsertMapping inserts a new mapping row.
func (r *implRepository) InsertMapping(ctx context.Context, m model.Mapping) error {
	const query = `
		INSERT INTO jira_channel_mappings (id, channel, project_id, component_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`

	if _, err := r.db.ExecContext(ctx, query, m.ID, m.Channel, m.ProjectID, m.ComponentID, m.Active); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertMapping"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// SetMappingActive flips the active flag on the row identified by its
// natural key and returns how many rows were touched.
func (r *implRepository) SetMappingActive(ctx context.Context, opt repo.SetMappingActiveOptions) (int64, error) {
	const query = `
		UPDATE jira_channel_mappings
		SET active = $1, updated_at = NOW()
		WHERE channel = $2 AND project_id = $3 AND component_id = $4`

	result, err := r.db.ExecContext(ctx, query, opt.Active, opt.Channel, opt.ProjectID, opt.ComponentID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetMappingActive"), err)
		return 0, repo.ErrFailedToUpdate
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: rows affected: %v", r.dsn("SetMappingActive"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return affected, nil
}

// ListRepoChannels returns the channels linked to a repository name.
func (r *implRepository) ListRepoChannels(ctx context.Context, repoName string) ([]string, error) {
	const query = `SELECT channel FROM jira_repo_channels WHERE repo_name = $1`

	rows, err := r.db.QueryContext(ctx, query, repoName)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRepoChannels"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	channels := make([]string, 0)
	for rows.Next() {
		var channel string
		if err := rows.Scan(&channel); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListRepoChannels"), err)
			return nil, repo.ErrFailedToList
		}
		channels = append(channels, channel)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListRepoChannels"), err)
		return nil, repo.ErrFailedToList
	}
	return channels, nil
}

// buildListQuery builds the WHERE clause + args for ListMappings.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildListQuery(opt repo.ListMappingsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Channel != "" {
		conditions = append(conditions, fmt.Sprintf("channel = $%d", idx))
		args = append(args, opt.Channel)
		idx++
	}
	if opt.ProjectID != "" {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", idx))
		args = append(args, opt.ProjectID)
		idx++
	}
	if opt.ComponentID != "" {
		conditions = append(conditions, fmt.Sprintf("component_id = $%d", idx))
		args = append(args, opt.ComponentID)
		idx++
	}
	if opt.OnlyActive {
		conditions = append(conditions, "active = TRUE")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
