package report

import "context"

// Repo caches board reports keyed by the normalized board string.
type Repo interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, board string) (*BoardReport, error)
	// Save stores the report; ttlSeconds <= 0 keeps it until evicted.
	Save(ctx context.Context, r *BoardReport, ttlSeconds int) error
	Delete(ctx context.Context, board string) error
}
