package webhook

import (
	"errors"
	"time"
)

var (
	ErrInvalidScope  = errors.New("webhook must target exactly one of project or group")
	ErrMissingOwner  = errors.New("webhook owner is required")
	ErrMissingURL    = errors.New("webhook url is required")
	ErrMissingSecret = errors.New("webhook secret is required")
	ErrMissingUUID   = errors.New("webhook uuid is required")
)

// Webhook is one registered provider-side hook. Exactly one of project id /
// group id is set. Exists=false marks the hook for reinstallation by the
// reconciler; this core only ever flips the flag, it never deletes rows.
type Webhook struct {
	id        int64
	scope     Scope
	userID    string
	exists    bool
	url       string
	secret    string
	uuid      string
	createdAt time.Time
	updatedAt time.Time
}

func NewWebhook(scope Scope, userID, url, secret, uuid string) (*Webhook, error) {
	if userID == "" {
		return nil, ErrMissingOwner
	}
	if url == "" {
		return nil, ErrMissingURL
	}
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if uuid == "" {
		return nil, ErrMissingUUID
	}
	return &Webhook{
		scope:  scope,
		userID: userID,
		exists: true,
		url:    url,
		secret: secret,
		uuid:   uuid,
	}, nil
}

// ReconstructWebhook rebuilds an entity from a persisted row without
// re-running creation validation.
func ReconstructWebhook(id int64, scope Scope, userID string, exists bool, url, secret, uuid string, createdAt, updatedAt time.Time) *Webhook {
	return &Webhook{
		id:        id,
		scope:     scope,
		userID:    userID,
		exists:    exists,
		url:       url,
		secret:    secret,
		uuid:      uuid,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (w *Webhook) ID() int64            { return w.id }
func (w *Webhook) Scope() Scope         { return w.scope }
func (w *Webhook) UserID() string       { return w.userID }
func (w *Webhook) Exists() bool         { return w.exists }
func (w *Webhook) URL() string          { return w.url }
func (w *Webhook) Secret() string       { return w.secret }
func (w *Webhook) UUID() string         { return w.uuid }
func (w *Webhook) CreatedAt() time.Time { return w.createdAt }
func (w *Webhook) UpdatedAt() time.Time { return w.updatedAt }

// MarkForReinstallation is unconditional: already-stale hooks stay stale.
func (w *Webhook) MarkForReinstallation() {
	w.exists = false
}
