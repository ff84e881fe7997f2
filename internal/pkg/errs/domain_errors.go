package errs

import "errors"

// Domain-specific sentinel errors for the ingestion gate and lifecycle store
var (
	// Ingestion gate errors
	ErrWebhookAuthFailed = errors.New("webhook authentication failed")
	ErrInvalidPayload    = errors.New("invalid payload")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
