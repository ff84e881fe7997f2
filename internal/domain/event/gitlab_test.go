//go:build unit

package event_test

import (
	"strings"
	"testing"

	"webhook-gateway/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitLabProviderDedupKey(t *testing.T) {
	p := event.NewGitLabProvider()

	t.Run("object_attributes.idをそのままキーに使う", func(t *testing.T) {
		key, err := p.DedupKey([]byte(`{"object_kind":"merge_request","object_attributes":{"id":42,"state":"opened"}}`))
		require.NoError(t, err)
		assert.Equal(t, "42", key)
	})

	t.Run("文字列idもそのまま使う", func(t *testing.T) {
		key, err := p.DedupKey([]byte(`{"object_attributes":{"id":"abc-123"}}`))
		require.NoError(t, err)
		assert.Equal(t, "abc-123", key)
	})

	t.Run("idなしはコンテンツハッシュにフォールバック", func(t *testing.T) {
		key, err := p.DedupKey([]byte(`{"object_kind":"push","ref":"refs/heads/main"}`))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "gitlab_msg:"))
		// sha256 hex digest after the prefix
		assert.Len(t, key, len("gitlab_msg:")+64)
	})

	t.Run("フィールド順が違っても同じハッシュ", func(t *testing.T) {
		a, err := p.DedupKey([]byte(`{"object_kind":"push","ref":"refs/heads/main","total_commits_count":3}`))
		require.NoError(t, err)
		b, err := p.DedupKey([]byte(`{"total_commits_count":3,"object_kind":"push","ref":"refs/heads/main"}`))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("内容が違えばハッシュも違う", func(t *testing.T) {
		a, err := p.DedupKey([]byte(`{"object_kind":"push","ref":"refs/heads/main"}`))
		require.NoError(t, err)
		b, err := p.DedupKey([]byte(`{"object_kind":"push","ref":"refs/heads/develop"}`))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("ゼロや空のidはフォールバック", func(t *testing.T) {
		for _, raw := range []string{
			`{"object_attributes":{"id":0}}`,
			`{"object_attributes":{"id":""}}`,
			`{"object_attributes":{"state":"opened"}}`,
			`{"object_attributes":"not-an-object"}`,
		} {
			key, err := p.DedupKey([]byte(raw))
			require.NoError(t, err, raw)
			assert.True(t, strings.HasPrefix(key, "gitlab_msg:"), raw)
		}
	})

	t.Run("大きな数値idも桁落ちしない", func(t *testing.T) {
		key, err := p.DedupKey([]byte(`{"object_attributes":{"id":9007199254740993}}`))
		require.NoError(t, err)
		assert.Equal(t, "9007199254740993", key)
	})

	t.Run("不正なJSONはエラー", func(t *testing.T) {
		for _, raw := range []string{
			``,
			`not json`,
			`[1,2,3]`,
			`{"a":1} trailing`,
			`{"a":`,
		} {
			_, err := p.DedupKey([]byte(raw))
			assert.ErrorIs(t, err, event.ErrMalformedPayload, raw)
		}
	})
}

func TestGitLabProviderSource(t *testing.T) {
	assert.Equal(t, event.SourceGitLab, event.NewGitLabProvider().Source())
}
