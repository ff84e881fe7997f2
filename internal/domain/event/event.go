package event

import (
	"encoding/json"
	"time"
)

// Envelope is the normalized message handed to the downstream processor.
// The payload travels untouched; only the source tag and webhook identity
// are added around it.
type Envelope struct {
	Source     string          `json:"source"`
	Payload    json.RawMessage `json:"payload"`
	WebhookID  string          `json:"webhook_id"`
	ReceivedAt time.Time       `json:"received_at"`
}

// Provider supplies the provider-specific pieces of the ingestion pipeline:
// the source tag and the dedup-key derivation for one raw delivery. The gate
// itself stays provider-agnostic.
type Provider interface {
	Source() string
	DedupKey(raw []byte) (string, error)
}
