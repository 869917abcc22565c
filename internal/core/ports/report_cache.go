package ports

import (
	"context"
	"time"
)

// BillingReportCachePrefix namespaces cached billing report payloads.
// Commands that change billing-relevant state invalidate by this prefix.
const BillingReportCachePrefix = "billing:report:"

// ReportCache caches serialized read-model payloads with a TTL.
// Misses are not errors: Get reports presence through its second return
// value.
type ReportCache interface {
	// Get retrieves the cached payload for the key, if present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the payload under the key for the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// InvalidateByPrefix drops every cached entry whose key starts with
	// the prefix.
	InvalidateByPrefix(ctx context.Context, prefix string) error
}
