//go:build e2e

package helper

import (
	"testing"
	"time"

	"webhook-gateway/internal/domain/user"
	"webhook-gateway/internal/pkg/config"
	"webhook-gateway/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints tokens signed with the app's test secret.
type JWTTestHelper struct {
	service *jwt.Service
}

func NewJWTTestHelper(cfg config.JWTConfig) *JWTTestHelper {
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		duration = time.Hour
	}
	return &JWTTestHelper{service: jwt.NewService(cfg.Secret, duration)}
}

func (h *JWTTestHelper) TokenFor(t *testing.T, userID string) string {
	t.Helper()

	token, err := h.service.GenerateToken(userID, user.RoleUser)
	require.NoError(t, err, "トークン生成に失敗")
	return token
}
