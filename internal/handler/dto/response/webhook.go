package response

import "webhook-gateway/internal/usecase/queries"

type WebhookResponse struct {
	ID            int64   `json:"id"`
	ProjectID     *string `json:"project_id,omitempty"`
	GroupID       *string `json:"group_id,omitempty"`
	WebhookExists bool    `json:"webhook_exists"`
	WebhookURL    string  `json:"webhook_url"`
	WebhookUUID   string  `json:"webhook_uuid"`
}

type ReinstallResponse struct {
	Message       string `json:"message"`
	WebhookMarked int64  `json:"webhook_marked"`
}

func FromWebhookView(v queries.WebhookView) WebhookResponse {
	return WebhookResponse{
		ID:            v.ID,
		ProjectID:     v.ProjectID,
		GroupID:       v.GroupID,
		WebhookExists: v.WebhookExists,
		WebhookURL:    v.WebhookURL,
		WebhookUUID:   v.WebhookUUID,
	}
}

func FromWebhookList(views []queries.WebhookView) []WebhookResponse {
	resp := make([]WebhookResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, FromWebhookView(v))
	}
	return resp
}
