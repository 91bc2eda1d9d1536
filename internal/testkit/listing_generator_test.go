package testkit

import (
	"context"
	"testing"

	"nestmetrics/domain/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := GeneratorConfig{ListingCount: 100, HostCount: 20, Seed: 7}

	first := NewListingGenerator(cfg).Generate()
	second := NewListingGenerator(cfg).Generate()

	require.Len(t, first, 100)
	require.Len(t, second, 100)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Price, second[i].Price)
		assert.Equal(t, first[i].Borough, second[i].Borough)
		assert.Equal(t, first[i].HostName, second[i].HostName)
	}
}

func TestGenerateCoversBoroughsAndRoomTypes(t *testing.T) {
	ls := NewListingGenerator(DefaultGeneratorConfig()).Generate()
	require.Len(t, ls, 2000)

	boroughs := make(map[listing.Borough]int)
	roomTypes := make(map[listing.RoomType]int)
	for _, l := range ls {
		boroughs[l.Borough]++
		roomTypes[l.RoomType]++

		assert.GreaterOrEqual(t, l.Price, listing.MinPlausiblePrice)
		assert.GreaterOrEqual(t, l.MinimumNights, 1)
		assert.GreaterOrEqual(t, l.Accommodates, 1)
		require.NotNil(t, l.Lat)
		require.NotNil(t, l.Long)
	}

	for _, b := range listing.Boroughs {
		assert.Greater(t, boroughs[b], 0, "borough %s missing from synthetic data", b)
	}
	for _, rt := range listing.RoomTypes {
		assert.Greater(t, roomTypes[rt], 0, "room type %s missing from synthetic data", rt)
	}

	// Manhattan should be priciest overall, matching the market shape.
	avg := func(b listing.Borough) float64 {
		sum, n := 0.0, 0
		for _, l := range ls {
			if l.Borough == b {
				sum += l.Price
				n++
			}
		}
		return sum / float64(n)
	}
	assert.Greater(t, avg(listing.BoroughManhattan), avg(listing.BoroughBronx))
}

func TestKitSnapshotAndSource(t *testing.T) {
	kit := NewKitWithConfig(GeneratorConfig{ListingCount: 50, HostCount: 10, Seed: 1})

	snap := kit.Snapshot()
	assert.Equal(t, 50, snap.Len())
	assert.Equal(t, "synthetic", snap.Source)

	src := kit.Source()
	assert.Equal(t, "synthetic", src.Name())
	ls, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ls, 50)
}
