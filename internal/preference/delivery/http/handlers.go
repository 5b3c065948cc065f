package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jira-notifier/internal/preference"
	"jira-notifier/pkg/response"
)

// Get godoc
// @Summary     Get channel preferences
// @Description Returns the resolved notification preferences for a channel. Unconfigured toggles default to on.
// @Tags        Preferences
// @Produce     json
// @Param       X-Workspace-Id header string false "Workspace override"
// @Param       channel path string true "Channel name"
// @Success     200 {object} prefsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/preferences/{channel} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	channel := c.Param("channel")
	if channel == "" {
		response.Error(c, preference.ErrInvalidInput, nil)
		return
	}

	prefs, err := h.uc.PreferencesFor(ctx, h.scopeFrom(c), channel)
	if err != nil {
		h.l.Errorf(ctx, "preference.delivery.http.Get: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newPrefsResp(prefs))
}

// Set godoc
// @Summary     Update channel preferences
// @Description Applies a partial preference update. Omitted fields keep their stored value.
// @Tags        Preferences
// @Accept      json
// @Produce     json
// @Param       X-Workspace-Id header string false "Workspace override"
// @Param       channel path string true "Channel name"
// @Param       body body setReq true "Preference toggles"
// @Success     200 {object} prefsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/preferences/{channel} [PUT]
func (h *handler) Set(c *gin.Context) {
	ctx := c.Request.Context()

	var req setReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	rec, err := h.uc.Set(ctx, h.scopeFrom(c), req.toInput(c.Param("channel")))
	if err != nil {
		if errors.Is(err, preference.ErrInvalidInput) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "preference.delivery.http.Set: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newPrefsResp(rec.Resolve()))
}
