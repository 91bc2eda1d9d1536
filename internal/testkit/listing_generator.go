package testkit

import (
	"fmt"
	"math/rand"

	"nestmetrics/domain/listing"
)

// GeneratorConfig configures the synthetic listing generator
type GeneratorConfig struct {
	ListingCount int   `json:"listing_count"`
	HostCount    int   `json:"host_count"`
	Seed         int64 `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults for synthetic data
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ListingCount: 2000,
		HostCount:    400,
		Seed:         42,
	}
}

// Borough price levels and listing shares roughly shaped like the NYC
// market: Manhattan expensive and dense, Staten Island cheap and sparse.
var boroughProfiles = map[listing.Borough]struct {
	basePrice float64
	share     float64
	lat, long float64
}{
	listing.BoroughManhattan:    {basePrice: 200, share: 0.32, lat: 40.7766, long: -73.9713},
	listing.BoroughBrooklyn:     {basePrice: 125, share: 0.36, lat: 40.6782, long: -73.9442},
	listing.BoroughQueens:       {basePrice: 95, share: 0.20, lat: 40.7282, long: -73.7949},
	listing.BoroughBronx:        {basePrice: 80, share: 0.07, lat: 40.8448, long: -73.8648},
	listing.BoroughStatenIsland: {basePrice: 85, share: 0.05, lat: 40.5795, long: -74.1502},
}

var roomTypeMultipliers = map[listing.RoomType]float64{
	listing.RoomEntireHome:  1.0,
	listing.RoomPrivateRoom: 0.48,
	listing.RoomSharedRoom:  0.26,
}

// ListingGenerator generates realistic short-term rental listing data
type ListingGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewListingGenerator creates a seeded generator
func NewListingGenerator(config GeneratorConfig) *ListingGenerator {
	return &ListingGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate produces the synthetic listing set. Output is deterministic for
// a given seed.
func (g *ListingGenerator) Generate() []listing.Listing {
	listings := make([]listing.Listing, 0, g.config.ListingCount)

	for i := 0; i < g.config.ListingCount; i++ {
		borough := g.pickBorough()
		roomType := g.pickRoomType()
		profile := boroughProfiles[borough]

		// Log-normal-ish price spread around the borough base.
		price := profile.basePrice * roomTypeMultipliers[roomType] *
			(0.6 + g.rng.Float64()*1.1)
		if price < listing.MinPlausiblePrice {
			price = listing.MinPlausiblePrice
		}

		hostID := g.rng.Intn(g.config.HostCount)
		l := listing.Listing{
			ID:            int64(1000 + i),
			Name:          fmt.Sprintf("%s %s #%d", borough, shortRoomName(roomType), i),
			HostName:      fmt.Sprintf("Host %03d", hostID),
			RoomType:      roomType,
			Borough:       borough,
			Price:         float64(int(price*100)) / 100,
			MinimumNights: 1 + g.rng.Intn(7),
			Availability:  g.rng.Intn(366),
			NumberReviews: g.rng.Intn(250),
			Accommodates:  1 + g.rng.Intn(6),
			HostVerified:  g.rng.Float64() < 0.6,
			InstantBook:   g.rng.Float64() < 0.4,
			HostListings:  1 + g.rng.Intn(5),
		}

		// About 20% of listings carry no review frequency, like the real
		// dataset.
		if g.rng.Float64() < 0.8 {
			rpm := g.rng.Float64() * 4.5
			l.ReviewsPerMo = &rpm
		}

		lat := profile.lat + (g.rng.Float64()-0.5)*0.08
		long := profile.long + (g.rng.Float64()-0.5)*0.08
		l.Lat = &lat
		l.Long = &long

		listings = append(listings, l)
	}

	return listings
}

func (g *ListingGenerator) pickBorough() listing.Borough {
	r := g.rng.Float64()
	cumulative := 0.0
	for _, b := range listing.Boroughs {
		cumulative += boroughProfiles[b].share
		if r < cumulative {
			return b
		}
	}
	return listing.BoroughStatenIsland
}

func (g *ListingGenerator) pickRoomType() listing.RoomType {
	r := g.rng.Float64()
	switch {
	case r < 0.55:
		return listing.RoomEntireHome
	case r < 0.92:
		return listing.RoomPrivateRoom
	default:
		return listing.RoomSharedRoom
	}
}

func shortRoomName(rt listing.RoomType) string {
	switch rt {
	case listing.RoomEntireHome:
		return "Apartment"
	case listing.RoomPrivateRoom:
		return "Private Room"
	default:
		return "Shared Room"
	}
}
