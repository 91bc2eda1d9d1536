package listing

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable view over the full listing set. It is built once
// at startup and shared read-only by every request; filter helpers return
// fresh slices and never mutate the underlying data.
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	Source   string

	listings []Listing
}

// NewSnapshot wraps a listing set in an immutable snapshot.
func NewSnapshot(source string, listings []Listing) *Snapshot {
	return &Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: time.Now().UTC(),
		Source:   source,
		listings: listings,
	}
}

// Len returns the number of listings in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.listings)
}

// All returns every listing. Callers must not modify the returned slice.
func (s *Snapshot) All() []Listing {
	return s.listings
}

// Filter returns the listings matching the predicate.
func (s *Snapshot) Filter(keep func(Listing) bool) []Listing {
	var out []Listing
	for _, l := range s.listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// ByBorough returns the listings in a neighbourhood group.
func (s *Snapshot) ByBorough(b Borough) []Listing {
	return s.Filter(func(l Listing) bool { return l.Borough == b })
}

// ByRoomType returns the listings of a room type.
func (s *Snapshot) ByRoomType(rt RoomType) []Listing {
	return s.Filter(func(l Listing) bool { return l.RoomType == rt })
}

// Comparables returns the listings matching both room type and borough, the
// comparable set used for statistical estimation.
func (s *Snapshot) Comparables(rt RoomType, b Borough) []Listing {
	return s.Filter(func(l Listing) bool { return l.RoomType == rt && l.Borough == b })
}

// Prices extracts the price column from a listing slice.
func Prices(ls []Listing) []float64 {
	out := make([]float64, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Price)
	}
	return out
}

// PlausiblePrices extracts the prices inside the statistics band.
func PlausiblePrices(ls []Listing) []float64 {
	var out []float64
	for _, l := range ls {
		if PlausiblePrice(l.Price) {
			out = append(out, l.Price)
		}
	}
	return out
}
