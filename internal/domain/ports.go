package domain

import "context"

// Cache is a read-model cache for resolved bundles and guide views.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// CRMClient is the outbound port to the external CRM. Payloads are plain
// JSON maps; the adapter owns auth, the location identifier, and transport.
type CRMClient interface {
	// UpsertContact creates or updates a contact keyed by email and returns
	// its identifier.
	UpsertContact(ctx context.Context, payload map[string]any) (string, error)
	// CreateOpportunity always creates a new opportunity and returns its
	// identifier.
	CreateOpportunity(ctx context.Context, payload map[string]any) (string, error)
}
