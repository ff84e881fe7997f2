package api

import (
	"errors"
	"log/slog"
	"net/http"

	resdto "webhook-gateway/internal/handler/dto/response"
	"webhook-gateway/internal/handler/httperr"
	"webhook-gateway/internal/handler/middleware"
	"webhook-gateway/internal/pkg/errs"
	"webhook-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Delivery headers set by the provider-side webhook configuration.
const (
	HeaderGitlabToken = "X-Gitlab-Token"
	HeaderWebhookID   = "X-Gateway-Webhook-Id"
	HeaderUserID      = "X-Gateway-User-Id"
)

type EventHandler struct {
	cmds commands.EventCommands
}

func NewEventHandler(cmds commands.EventCommands) *EventHandler {
	return &EventHandler{cmds: cmds}
}

// @Summary Receive GitLab webhook events
// @Description Verify, deduplicate and forward one GitLab webhook delivery
// @Tags integration
// @Accept json
// @Produce json
// @Param X-Gitlab-Token header string true "Shared webhook secret"
// @Param X-Gateway-Webhook-Id header string true "Webhook UUID"
// @Param X-Gateway-User-Id header string true "Owning user id"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /integration/gitlab/events [post]
func (h *EventHandler) Receive(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload.", nil)
		return
	}

	result, err := h.cmds.Process(
		c.Request.Context(),
		raw,
		c.GetHeader(HeaderWebhookID),
		c.GetHeader(HeaderUserID),
		c.GetHeader(HeaderGitlabToken),
	)
	if err != nil {
		// One rejection signal for every auth-class failure: a missing
		// header, an unknown webhook and a wrong secret are not
		// distinguishable from outside.
		if errors.Is(err, errs.ErrWebhookAuthFailed) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Invalid webhook credentials", nil)
			return
		}
		slog.Error("failed to process gitlab event", "error", err, "request_id", middleware.GetRequestID(c))
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload.", nil)
		return
	}

	// Duplicates answer 200 like accepted deliveries, otherwise the
	// provider keeps retrying what was already processed.
	if result == commands.ResultDuplicate {
		slog.Info("duplicate gitlab event ignored", "request_id", middleware.GetRequestID(c))
		c.JSON(http.StatusOK, resdto.EventResponse{Message: "Duplicate GitLab event ignored."})
		return
	}

	c.JSON(http.StatusOK, resdto.EventResponse{Message: "GitLab event accepted."})
}
