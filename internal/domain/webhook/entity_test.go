//go:build unit

package webhook_test

import (
	"testing"

	"webhook-gateway/internal/domain/webhook"
	"webhook-gateway/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.WebhookBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewWebhookBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestWebhook(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewWebhookBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.True(t, actual.Exists())
		assert.Equal(t, "keycloak-user-1", actual.UserID())
		require.NotNil(t, actual.Scope().ProjectID())
		assert.Equal(t, "12345", *actual.Scope().ProjectID())
		assert.Nil(t, actual.Scope().GroupID())
	})

	t.Run("スコープ検証", func(t *testing.T) {
		groupID := "my-group"
		runCases(t, []testCase{
			{
				name: "プロジェクトスコープOK",
			},
			{
				name: "グループスコープOK",
				mutate: func(b *builder.WebhookBuilder) {
					b.ProjectID = nil
					b.GroupID = &groupID
				},
			},
			{
				name: "両方指定NG",
				mutate: func(b *builder.WebhookBuilder) {
					b.GroupID = &groupID
				},
				errIs: webhook.ErrInvalidScope,
			},
			{
				name: "両方未指定NG",
				mutate: func(b *builder.WebhookBuilder) {
					b.ProjectID = nil
				},
				errIs: webhook.ErrInvalidScope,
			},
		})
	})

	t.Run("必須フィールド検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "所有者なしNG",
				mutate: func(b *builder.WebhookBuilder) { b.UserID = "" },
				errIs:  webhook.ErrMissingOwner,
			},
			{
				name:   "URLなしNG",
				mutate: func(b *builder.WebhookBuilder) { b.URL = "" },
				errIs:  webhook.ErrMissingURL,
			},
			{
				name:   "シークレットなしNG",
				mutate: func(b *builder.WebhookBuilder) { b.Secret = "" },
				errIs:  webhook.ErrMissingSecret,
			},
			{
				name:   "UUIDなしNG",
				mutate: func(b *builder.WebhookBuilder) { b.UUID = "" },
				errIs:  webhook.ErrMissingUUID,
			},
		})
	})

	t.Run("再設置マーク", func(t *testing.T) {
		w, err := builder.NewWebhookBuilder().BuildDomain()
		require.NoError(t, err)

		require.True(t, w.Exists())
		w.MarkForReinstallation()
		assert.False(t, w.Exists())

		// already-stale hooks stay stale
		w.MarkForReinstallation()
		assert.False(t, w.Exists())
	})
}
