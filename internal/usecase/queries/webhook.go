package queries

import (
	"context"
	"time"
)

// WebhookView is the read model served to the owner and to the reconciler.
// The secret never leaves the store through the read side.
type WebhookView struct {
	ID            int64
	ProjectID     *string
	GroupID       *string
	WebhookExists bool
	WebhookURL    string
	WebhookUUID   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type WebhookReadStore interface {
	ListByUser(ctx context.Context, userID string) ([]WebhookView, error)
}

type WebhookQueries interface {
	ListByUser(ctx context.Context, userID string) ([]WebhookView, error)
}

type webhookQueriesImpl struct {
	store WebhookReadStore
}

func NewWebhookQueries(store WebhookReadStore) WebhookQueries {
	return &webhookQueriesImpl{store: store}
}

func (q *webhookQueriesImpl) ListByUser(ctx context.Context, userID string) ([]WebhookView, error) {
	return q.store.ListByUser(ctx, userID)
}
