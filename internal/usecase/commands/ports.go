package commands

import (
	"context"
	"time"

	"webhook-gateway/internal/domain/event"
)

// SecretStore is the lifecycle-store capability the gate verifies against.
// A missing webhook surfaces as infra.KindNotFound; callers must not expose
// the difference between "not found" and "wrong secret".
type SecretStore interface {
	GetSecret(ctx context.Context, webhookUUID, userID string) (string, error)
}

// ClaimStore is the shared fast key-value store holding dedup keys. Claim is
// a single atomic set-if-absent with expiry: under concurrent delivery of
// the same key, exactly one caller observes true.
type ClaimStore interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Processor is the downstream message-processing manager. The gate does not
// depend on anything it returns beyond success/failure of the handoff.
type Processor interface {
	Receive(ctx context.Context, env event.Envelope) error
}

// WebhookRepository is the write side of the lifecycle store.
type WebhookRepository interface {
	MarkForReinstallation(ctx context.Context, userID string) (int64, error)
}
