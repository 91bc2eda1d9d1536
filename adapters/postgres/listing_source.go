package postgres

import (
	"context"

	"nestmetrics/domain/listing"
	"nestmetrics/internal/errors"
	"nestmetrics/ports"

	"github.com/jmoiron/sqlx"
)

// listingSource loads the dataset from a Postgres listings table. It is an
// alternative to the file source when DATABASE_URL is configured.
type listingSource struct {
	db *sqlx.DB
}

// NewListingSource creates a Postgres-backed listing source
func NewListingSource(db *sqlx.DB) ports.ListingSource {
	return &listingSource{db: db}
}

// Name identifies the source for startup logging
func (s *listingSource) Name() string {
	return "postgres:listings"
}

// Load reads every listing row. The table carries the normalized schema, so
// no alias resolution happens here.
func (s *listingSource) Load(ctx context.Context) ([]listing.Listing, error) {
	query := `SELECT
		id, COALESCE(name, '') AS name, COALESCE(host_name, '') AS host_name,
		room_type, neighbourhood_group, price,
		COALESCE(minimum_nights, 1) AS minimum_nights,
		COALESCE(availability_365, 0) AS availability_365,
		reviews_per_month,
		COALESCE(number_of_reviews, 0) AS number_of_reviews,
		COALESCE(accommodates, 1) AS accommodates,
		COALESCE(host_identity_verified, false) AS host_identity_verified,
		COALESCE(instant_bookable, false) AS instant_bookable,
		lat, long,
		COALESCE(calculated_host_listings_count, 1) AS calculated_host_listings_count
	FROM listings
	WHERE price > 0`

	var listings []listing.Listing
	if err := s.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, errors.Wrap(err, "failed to load listings from database")
	}
	if len(listings) == 0 {
		return nil, errors.DataUnavailable("listings table is empty")
	}
	return listings, nil
}
