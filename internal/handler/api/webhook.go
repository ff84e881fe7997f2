package api

import (
	"log/slog"
	"net/http"

	resdto "webhook-gateway/internal/handler/dto/response"
	"webhook-gateway/internal/handler/httperr"
	"webhook-gateway/internal/handler/middleware"
	"webhook-gateway/internal/pkg/errs"
	"webhook-gateway/internal/usecase/commands"
	"webhook-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds commands.WebhookCommands
	q    queries.WebhookQueries
}

func NewWebhookHandler(cmds commands.WebhookCommands, q queries.WebhookQueries) *WebhookHandler {
	return &WebhookHandler{cmds: cmds, q: q}
}

// @Summary Mark webhooks for reinstallation
// @Description Flag every webhook of the caller so the reconciler recreates them
// @Tags integration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReinstallResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /integration/gitlab/reinstall-webhook [post]
func (h *WebhookHandler) Reinstall(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "User not authenticated", nil)
		return
	}

	count, err := h.cmds.MarkForReinstallation(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mark webhook for reinstallation", nil)
		return
	}

	slog.Info("GitLab webhook marked for reinstallation",
		"user_id", userID,
		"webhook_marked", count,
	)

	c.JSON(http.StatusOK, resdto.ReinstallResponse{
		Message:       "Webhook marked for reinstallation",
		WebhookMarked: count,
	})
}

// @Summary List own webhooks
// @Description List the caller's registered webhooks (secrets excluded)
// @Tags integration
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WebhookResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /integration/gitlab/webhooks [get]
func (h *WebhookHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "User not authenticated", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list webhooks", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"webhooks": resdto.FromWebhookList(views)})
}
