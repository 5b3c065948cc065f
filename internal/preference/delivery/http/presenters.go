package http

import (
	"github.com/gin-gonic/gin"

	"jira-notifier/internal/model"
	"jira-notifier/internal/preference"
)

type setReq struct {
	IssueCreated *bool `json:"issue_created"`
	IssueDeleted *bool `json:"issue_deleted"`
	IssueComment *bool `json:"issue_comment"`
	IssueStatus  *bool `json:"issue_status"`
	IssueState   *bool `json:"issue_state"`

	Bug     *bool `json:"bug"`
	Task    *bool `json:"task"`
	Epic    *bool `json:"epic"`
	Story   *bool `json:"story"`
	Subtask *bool `json:"subtask"`
}

func (r setReq) toInput(channel string) preference.SetInput {
	return preference.SetInput{
		Channel:      channel,
		IssueCreated: r.IssueCreated,
		IssueDeleted: r.IssueDeleted,
		IssueComment: r.IssueComment,
		IssueStatus:  r.IssueStatus,
		IssueState:   r.IssueState,
		Bug:          r.Bug,
		Task:         r.Task,
		Epic:         r.Epic,
		Story:        r.Story,
		Subtask:      r.Subtask,
	}
}

// prefsResp exposes the resolved view: every field collapsed to a concrete
// boolean the way the routing filter will see it.
type prefsResp struct {
	Channel string `json:"channel"`

	IssueCreated bool `json:"issue_created"`
	IssueDeleted bool `json:"issue_deleted"`
	IssueComment bool `json:"issue_comment"`
	IssueStatus  bool `json:"issue_status"`
	IssueState   bool `json:"issue_state"`

	IssueTypes map[string]bool `json:"issue_types"`
}

func newPrefsResp(p model.ChannelPrefs) prefsResp {
	return prefsResp{
		Channel:      p.Channel,
		IssueCreated: p.IssueCreated,
		IssueDeleted: p.IssueDeleted,
		IssueComment: p.IssueComment,
		IssueStatus:  p.IssueStatus,
		IssueState:   p.IssueState,
		IssueTypes:   p.IssueTypes,
	}
}

// scopeFrom builds the request scope. The workspace comes from the
// X-Workspace-Id header, falling back to the configured default.
func (h *handler) scopeFrom(c *gin.Context) model.Scope {
	workspace := c.GetHeader("X-Workspace-Id")
	if workspace == "" {
		workspace = h.defaultWorkspace
	}
	return model.Scope{WorkspaceID: workspace}
}
