package forwarder

import (
	"context"
	"fmt"

	"webhook-gateway/internal/domain/event"
	"webhook-gateway/internal/pkg/config"
	"webhook-gateway/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

// Client hands accepted envelopes to the downstream processor. The client
// timeout bounds every forward call; a slow processor must not stall the
// gate for other deliveries.
type Client struct {
	http *resty.Client
	url  string
}

func NewClient(cfg config.ForwarderConfig) *Client {
	http := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "webhook-gateway/1.0")

	return &Client{
		http: http,
		url:  cfg.ProcessorURL,
	}
}

func (c *Client) Receive(ctx context.Context, env event.Envelope) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(env).
		Post(c.url)
	if err != nil {
		return errs.Wrap(err, "failed to reach processor")
	}
	if resp.IsError() {
		return errs.New(fmt.Sprintf("processor returned status %d", resp.StatusCode()))
	}
	return nil
}
