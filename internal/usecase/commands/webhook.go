package commands

import (
	"context"

	"webhook-gateway/internal/pkg/errs"
)

type WebhookCommands interface {
	// MarkForReinstallation flips webhook_exists to false on every webhook
	// the user owns and reports how many rows that touched. Idempotent:
	// already-stale rows are included in the count.
	MarkForReinstallation(ctx context.Context, userID string) (int64, error)
}

type webhookUseCaseImpl struct {
	repo WebhookRepository
}

func NewWebhookCommands(repo WebhookRepository) WebhookCommands {
	return &webhookUseCaseImpl{repo: repo}
}

func (uc *webhookUseCaseImpl) MarkForReinstallation(ctx context.Context, userID string) (int64, error) {
	count, err := uc.repo.MarkForReinstallation(ctx, userID)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return count, nil
}
