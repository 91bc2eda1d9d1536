package testkit

import (
	"context"
	"log"

	"nestmetrics/domain/listing"
	"nestmetrics/ports"
)

// Kit provides synthetic fixtures for tests and for running the service
// without a dataset file.
type Kit struct {
	config GeneratorConfig
}

// NewKit creates a kit with the default generator configuration
func NewKit() *Kit {
	return &Kit{config: DefaultGeneratorConfig()}
}

// NewKitWithConfig creates a kit with a custom generator configuration
func NewKitWithConfig(config GeneratorConfig) *Kit {
	return &Kit{config: config}
}

// Snapshot generates a synthetic snapshot directly, for tests
func (k *Kit) Snapshot() *listing.Snapshot {
	gen := NewListingGenerator(k.config)
	return listing.NewSnapshot("synthetic", gen.Generate())
}

// Source returns the kit as a ListingSource for the startup path
func (k *Kit) Source() ports.ListingSource {
	return &syntheticSource{config: k.config}
}

type syntheticSource struct {
	config GeneratorConfig
}

func (s *syntheticSource) Name() string {
	return "synthetic"
}

func (s *syntheticSource) Load(ctx context.Context) ([]listing.Listing, error) {
	log.Printf("[TestKit] Generating %d synthetic listings (seed %d)",
		s.config.ListingCount, s.config.Seed)
	gen := NewListingGenerator(s.config)
	return gen.Generate(), nil
}
