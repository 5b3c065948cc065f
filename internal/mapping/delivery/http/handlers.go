package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jira-notifier/internal/mapping"
	"jira-notifier/pkg/response"
)

// Create godoc
// @Summary     Create a channel mapping
// @Description Subscribes a channel to a Jira project, or to a single component when component_id is set.
// @Tags        Mappings
// @Accept      json
// @Produce     json
// @Param       X-Workspace-Id header string false "Workspace override"
// @Param       body body createReq true "Mapping data"
// @Success     200 {object} mappingResp
// @Failure     400 {object} response.Resp "Bad Request / Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/mappings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	m, err := h.uc.Create(ctx, h.scopeFrom(c), req.toInput())
	if err != nil {
		if errors.Is(err, mapping.ErrInvalidInput) || errors.Is(err, mapping.ErrMappingExists) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "mapping.delivery.http.Create: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newMappingResp(m))
}

// Remove godoc
// @Summary     Remove a channel mapping
// @Description Deactivates the mapping identified by channel, project and optional component.
// @Tags        Mappings
// @Produce     json
// @Param       X-Workspace-Id header string false "Workspace override"
// @Param       channel      query string true  "Channel name"
// @Param       project_id   query string true  "Jira project id"
// @Param       component_id query string false "Jira component id"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Mapping not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/mappings [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	input := mapping.RemoveInput{
		Channel:     c.Query("channel"),
		ProjectID:   c.Query("project_id"),
		ComponentID: c.Query("component_id"),
	}

	if err := h.uc.Remove(ctx, h.scopeFrom(c), input); err != nil {
		switch {
		case errors.Is(err, mapping.ErrInvalidInput):
			response.Error(c, err, nil)
		case errors.Is(err, mapping.ErrMappingNotFound):
			response.NotFound(c, "mapping not found")
		default:
			h.l.Errorf(ctx, "mapping.delivery.http.Remove: %v", err)
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, nil)
}

// List godoc
// @Summary     List channel mappings
// @Description Returns mappings for the workspace, optionally filtered by channel or project.
// @Tags        Mappings
// @Produce     json
// @Param       X-Workspace-Id header string false "Workspace override"
// @Param       channel    query string false "Filter by channel"
// @Param       project_id query string false "Filter by project"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/mappings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := mapping.Filter{
		Channel:   c.Query("channel"),
		ProjectID: c.Query("project_id"),
	}

	mappings, err := h.uc.List(ctx, h.scopeFrom(c), filter)
	if err != nil {
		h.l.Errorf(ctx, "mapping.delivery.http.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newListResp(mappings))
}
