package aggregate

import "nestmetrics/domain/listing"

// Overview summarizes the whole dataset. Prices outside the plausible band
// are excluded; counts are not.
type Overview struct {
	AvgPrice       float64 `json:"avg_price"`
	MedianPrice    float64 `json:"median_price"`
	AvgReviews     float64 `json:"avg_reviews"`
	TotalListings  int     `json:"total_listings"`
	ActiveListings int     `json:"active_listings"`
}

// PriceDistribution is the quartile summary of plausible prices.
type PriceDistribution struct {
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Mean   float64 `json:"mean"`
}

// BoroughStats summarizes one neighbourhood group.
type BoroughStats struct {
	Borough         listing.Borough `json:"-"`
	AvgPrice        float64         `json:"avg_price"`
	MedianPrice     float64         `json:"median_price"`
	Listings        int             `json:"listings"`
	AvgReviews      float64         `json:"avg_reviews"`
	AvgAvailability float64         `json:"avg_availability"`
}

// RoomTypeStats summarizes one room type.
type RoomTypeStats struct {
	RoomType   listing.RoomType `json:"-"`
	AvgPrice   float64          `json:"avg_price"`
	Listings   int              `json:"listings"`
	AvgReviews float64          `json:"avg_reviews"`
}

// HostStats aggregates one host's listings. ByHost returns hosts in
// first-appearance order so stable downstream sorts break ties on dataset
// order.
type HostStats struct {
	HostName     string
	Listings     int
	AvgReviews   float64
	TotalReviews float64
	AvgPrice     float64
	MinPrice     float64
	MaxPrice     float64
	// ReviewCount is the lifetime review total across the host's listings.
	ReviewCount int
}

// ComparableStats holds the prices of the comparable set for a
// (room type, borough) query.
type ComparableStats struct {
	Count  int
	Prices []float64
}

// VerifiedPricing compares average prices of verified and unverified hosts.
type VerifiedPricing struct {
	VerifiedAvgPrice   float64 `json:"verified_avg_price"`
	UnverifiedAvgPrice float64 `json:"unverified_avg_price"`
}

// BookingPatterns summarizes booking-related dataset traits.
type BookingPatterns struct {
	InstantBookableRatio float64 `json:"instant_bookable_ratio"`
	AvgMinimumNights     float64 `json:"avg_minimum_nights"`
}

// PerformanceTiers buckets plausible prices by the 20th/80th percentiles.
type PerformanceTiers struct {
	Premium  int `json:"premium"`
	Standard int `json:"standard"`
	Budget   int `json:"budget"`
}

// Coordinates is the dataset-wide mean location, used to fill missing
// geographic features on the model path.
type Coordinates struct {
	Lat  float64
	Long float64
}
