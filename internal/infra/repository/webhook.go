package repository

import (
	"context"
	"errors"

	"webhook-gateway/internal/infra"
	"webhook-gateway/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WebhookRepository serves both the write side (secret lookup, bulk mark)
// and the read side (owner listing) of the webhook lifecycle store.
type WebhookRepository struct {
	db *pgxpool.Pool
}

func NewWebhookRepository(db *pgxpool.Pool) *WebhookRepository {
	return &WebhookRepository{db: db}
}

func (r *WebhookRepository) GetSecret(ctx context.Context, webhookUUID, userID string) (string, error) {
	const q = `
		SELECT webhook_secret
		FROM webhooks
		WHERE webhook_uuid = $1 AND user_id = $2`

	var secret string
	err := r.db.QueryRow(ctx, q, webhookUUID, userID).Scan(&secret)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("webhook not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get webhook secret", err)
	}
	return secret, nil
}

// MarkForReinstallation is a single statement so the update is atomic among
// existing rows; no per-row read-then-update loop.
func (r *WebhookRepository) MarkForReinstallation(ctx context.Context, userID string) (int64, error) {
	const q = `
		UPDATE webhooks
		SET webhook_exists = FALSE, updated_at = now()
		WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, q, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark webhooks for reinstallation", err)
	}
	return tag.RowsAffected(), nil
}

func (r *WebhookRepository) ListByUser(ctx context.Context, userID string) ([]queries.WebhookView, error) {
	const q = `
		SELECT id, project_id, group_id, webhook_exists, webhook_url, webhook_uuid, created_at, updated_at
		FROM webhooks
		WHERE user_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list webhooks", err)
	}
	defer rows.Close()

	views := make([]queries.WebhookView, 0)
	for rows.Next() {
		var v queries.WebhookView
		if err := rows.Scan(&v.ID, &v.ProjectID, &v.GroupID, &v.WebhookExists, &v.WebhookURL, &v.WebhookUUID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan webhook row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read webhook rows", err)
	}
	return views, nil
}
