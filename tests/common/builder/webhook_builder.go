//go:build unit || e2e

package builder

import (
	"time"

	"webhook-gateway/internal/domain/webhook"
	"webhook-gateway/internal/usecase/queries"

	"github.com/google/uuid"
)

type WebhookBuilder struct {
	ProjectID *string
	GroupID   *string
	UserID    string
	URL       string
	Secret    string
	UUID      string
}

func NewWebhookBuilder() *WebhookBuilder {
	projectID := "12345"
	return &WebhookBuilder{
		ProjectID: &projectID,
		UserID:    "keycloak-user-1",
		URL:       "https://gateway.example.com/api/integration/gitlab/events",
		Secret:    "shhh-webhook-secret",
		UUID:      uuid.NewString(),
	}
}

func (b *WebhookBuilder) With(mutate func(*WebhookBuilder)) *WebhookBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *WebhookBuilder) BuildDomain() (*webhook.Webhook, error) {
	scope, err := webhook.NewScope(b.ProjectID, b.GroupID)
	if err != nil {
		return nil, err
	}
	return webhook.NewWebhook(scope, b.UserID, b.URL, b.Secret, b.UUID)
}

func (b *WebhookBuilder) BuildView() queries.WebhookView {
	now := time.Now()
	return queries.WebhookView{
		ID:            1,
		ProjectID:     b.ProjectID,
		GroupID:       b.GroupID,
		WebhookExists: true,
		WebhookURL:    b.URL,
		WebhookUUID:   b.UUID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
