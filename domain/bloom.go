package domain

import "context"

// BloomRepository is a probabilistic set of article public identifiers.
type BloomRepository interface {
	// Add puts key into the filter.
	Add(ctx context.Context, key string) error

	// Exists reports whether key may be in the filter.
	// true: maybe present, the caller must still check cache/DB.
	// false: definitely absent.
	Exists(ctx context.Context, key string) (bool, error)

	// BulkAdd puts many keys into the filter in one round trip.
	BulkAdd(ctx context.Context, keys []string) error
}
