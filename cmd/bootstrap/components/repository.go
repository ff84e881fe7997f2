package components

import (
	"webhook-gateway/internal/domain/event"
	"webhook-gateway/internal/infra/dedup"
	"webhook-gateway/internal/infra/forwarder"
	repo_impl "webhook-gateway/internal/infra/repository"
	"webhook-gateway/internal/pkg/config"
	"webhook-gateway/internal/usecase/commands"
	"webhook-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewWebhookRepository,
			fx.As(new(commands.SecretStore)),
			fx.As(new(commands.WebhookRepository)),
			fx.As(new(queries.WebhookReadStore)),
		),
		fx.Annotate(
			dedup.NewRedisClaimStore,
			fx.As(new(commands.ClaimStore)),
		),
		fx.Annotate(
			NewForwarderClient,
			fx.As(new(commands.Processor)),
		),
		fx.Annotate(
			event.NewGitLabProvider,
			fx.As(new(event.Provider)),
		),
	),
)

func NewForwarderClient(cfg config.Config) *forwarder.Client {
	return forwarder.NewClient(cfg.Forwarder)
}
