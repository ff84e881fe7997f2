package commands

import (
	"context"
	"crypto/subtle"
	"time"

	"webhook-gateway/internal/domain/event"
	"webhook-gateway/internal/infra"
	"webhook-gateway/internal/pkg/clock"
	"webhook-gateway/internal/pkg/config"
	"webhook-gateway/internal/pkg/errs"
)

type ProcessResult int

const (
	ResultRejected ProcessResult = iota
	ResultAccepted
	ResultDuplicate
)

// EventCommands is the ingestion gate: verify -> dedup -> forward, exactly
// once per unique delivery within the dedup TTL.
type EventCommands interface {
	VerifySignature(ctx context.Context, providedSecret, webhookUUID, userID string) error
	Process(ctx context.Context, raw []byte, webhookUUID, userID, providedSecret string) (ProcessResult, error)
}

type eventUseCaseImpl struct {
	secrets   SecretStore
	claims    ClaimStore
	processor Processor
	provider  event.Provider
	clock     clock.Clock
	ttl       time.Duration
}

func NewEventCommands(secrets SecretStore, claims ClaimStore, processor Processor, provider event.Provider, clk clock.Clock, cfg config.Config) EventCommands {
	return &eventUseCaseImpl{
		secrets:   secrets,
		claims:    claims,
		processor: processor,
		provider:  provider,
		clock:     clk,
		ttl:       cfg.Dedup.TTL,
	}
}

// VerifySignature is pure verification, no side effects. Missing inputs are
// rejected before any store interaction, and an unknown webhook produces the
// same error as a mismatched secret so existence never leaks.
func (uc *eventUseCaseImpl) VerifySignature(ctx context.Context, providedSecret, webhookUUID, userID string) error {
	if providedSecret == "" || webhookUUID == "" || userID == "" {
		return errs.ErrWebhookAuthFailed
	}

	secret, err := uc.secrets.GetSecret(ctx, webhookUUID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrWebhookAuthFailed
		}
		return errs.Wrap(err, "secret lookup failed")
	}

	if subtle.ConstantTimeCompare([]byte(providedSecret), []byte(secret)) != 1 {
		return errs.ErrWebhookAuthFailed
	}
	return nil
}

func (uc *eventUseCaseImpl) Process(ctx context.Context, raw []byte, webhookUUID, userID, providedSecret string) (ProcessResult, error) {
	if err := uc.VerifySignature(ctx, providedSecret, webhookUUID, userID); err != nil {
		return ResultRejected, err
	}

	key, err := uc.provider.DedupKey(raw)
	if err != nil {
		return ResultRejected, errs.Mark(err, errs.ErrInvalidPayload)
	}

	// The only atomicity-critical step: one SET NX EX guards against
	// double-processing under concurrent or retried delivery.
	claimed, err := uc.claims.Claim(ctx, key, uc.ttl)
	if err != nil {
		return ResultRejected, errs.Mark(errs.Wrap(err, "dedup claim failed"), errs.ErrInvalidPayload)
	}
	if !claimed {
		return ResultDuplicate, nil
	}

	env := event.Envelope{
		Source:     uc.provider.Source(),
		Payload:    raw,
		WebhookID:  webhookUUID,
		ReceivedAt: uc.clock.Now(),
	}

	// The claim is not rolled back if the forward fails: its job is dedup,
	// not transactional delivery. A delivery lost here stays lost for the
	// TTL window because provider retries will be deduplicated away.
	if err := uc.processor.Receive(ctx, env); err != nil {
		return ResultRejected, errs.Mark(errs.Wrap(err, "forward to processor failed"), errs.ErrInvalidPayload)
	}

	return ResultAccepted, nil
}
