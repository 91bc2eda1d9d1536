package ports

import (
	"context"

	"nestmetrics/domain/listing"
)

// ListingSource loads the full listing dataset from a backing store (file,
// database, or synthetic generator). Load is called once at startup; the
// result is wrapped in an immutable snapshot.
type ListingSource interface {
	// Name identifies the source for startup logging.
	Name() string

	// Load reads every listing. Rows that cannot be coerced into the fixed
	// schema are skipped, not fatal.
	Load(ctx context.Context) ([]listing.Listing, error)
}
