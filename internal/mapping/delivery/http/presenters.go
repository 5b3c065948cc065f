package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"jira-notifier/internal/mapping"
	"jira-notifier/internal/model"
)

type createReq struct {
	Channel     string `json:"channel" binding:"required"`
	ProjectID   string `json:"project_id" binding:"required"`
	ComponentID string `json:"component_id"`
}

func (r createReq) toInput() mapping.CreateInput {
	return mapping.CreateInput{
		Channel:     r.Channel,
		ProjectID:   r.ProjectID,
		ComponentID: r.ComponentID,
	}
}

type mappingResp struct {
	ID          string    `json:"id"`
	Channel     string    `json:"channel"`
	ProjectID   string    `json:"project_id"`
	ComponentID string    `json:"component_id,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newMappingResp(m model.Mapping) mappingResp {
	return mappingResp{
		ID:          m.ID,
		Channel:     m.Channel,
		ProjectID:   m.ProjectID,
		ComponentID: m.ComponentID,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type listResp struct {
	Mappings []mappingResp `json:"mappings"`
	Count    int           `json:"count"`
}

func newListResp(mappings []model.Mapping) listResp {
	resp := listResp{Mappings: make([]mappingResp, 0, len(mappings))}
	for _, m := range mappings {
		resp.Mappings = append(resp.Mappings, newMappingResp(m))
	}
	resp.Count = len(resp.Mappings)
	return resp
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
