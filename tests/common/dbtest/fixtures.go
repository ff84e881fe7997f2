//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestWebhook inserts a project-scoped webhook row and returns its id
// together with the generated webhook uuid.
func CreateTestWebhook(t *testing.T, db DBLike, userID, projectID, secret string) (int64, string) {
	t.Helper()

	webhookUUID := uuid.NewString()
	var id int64

	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO webhooks (project_id, user_id, webhook_exists, webhook_url, webhook_secret, webhook_uuid)
		VALUES ($1, $2, true, $3, $4, $5)
		RETURNING id`,
		projectID, userID,
		"https://gateway.example.com/api/integration/gitlab/events",
		secret, webhookUUID,
	).Scan(&id)
	require.NoError(t, err)

	return id, webhookUUID
}

// CreateTestGroupWebhook is the group-scoped variant.
func CreateTestGroupWebhook(t *testing.T, db DBLike, userID, groupID, secret string) (int64, string) {
	t.Helper()

	webhookUUID := uuid.NewString()
	var id int64

	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO webhooks (group_id, user_id, webhook_exists, webhook_url, webhook_secret, webhook_uuid)
		VALUES ($1, $2, true, $3, $4, $5)
		RETURNING id`,
		groupID, userID,
		"https://gateway.example.com/api/integration/gitlab/events",
		secret, webhookUUID,
	).Scan(&id)
	require.NoError(t, err)

	return id, webhookUUID
}

func CountExistingWebhooks(t *testing.T, db DBLike, userID string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM webhooks WHERE user_id = $1 AND webhook_exists = true", userID,
	).Scan(&count)
	require.NoError(t, err)
	return count
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), "TRUNCATE TABLE webhooks RESTART IDENTITY")
	return err
}
