package listing

// RoomType is the accommodation category of a listing.
type RoomType string

const (
	RoomEntireHome  RoomType = "Entire home/apt"
	RoomPrivateRoom RoomType = "Private room"
	RoomSharedRoom  RoomType = "Shared room"
)

// Borough is the neighbourhood group of a listing.
type Borough string

const (
	BoroughManhattan    Borough = "Manhattan"
	BoroughBrooklyn     Borough = "Brooklyn"
	BoroughQueens       Borough = "Queens"
	BoroughBronx        Borough = "Bronx"
	BoroughStatenIsland Borough = "Staten Island"
)

// Boroughs lists all known neighbourhood groups in canonical order.
var Boroughs = []Borough{
	BoroughManhattan,
	BoroughBrooklyn,
	BoroughQueens,
	BoroughBronx,
	BoroughStatenIsland,
}

// RoomTypes lists all known room types in canonical order.
var RoomTypes = []RoomType{
	RoomEntireHome,
	RoomPrivateRoom,
	RoomSharedRoom,
}

// Integer codes used when encoding categorical features for the regression
// model. The order matches the encoding the model was trained with; unknown
// values map to the first code.
var (
	roomTypeCodes = map[RoomType]int{
		RoomEntireHome:  0,
		RoomPrivateRoom: 1,
		RoomSharedRoom:  2,
	}
	boroughCodes = map[Borough]int{
		BoroughManhattan:    0,
		BoroughBrooklyn:     1,
		BoroughQueens:       2,
		BoroughBronx:        3,
		BoroughStatenIsland: 4,
	}
)

// Code returns the model feature code for the room type (unknown → 0).
func (rt RoomType) Code() int {
	return roomTypeCodes[rt]
}

// Code returns the model feature code for the borough (unknown → 0).
func (b Borough) Code() int {
	return boroughCodes[b]
}

// Known reports whether the borough is one of the five neighbourhood groups.
func (b Borough) Known() bool {
	_, ok := boroughCodes[b]
	return ok
}

// Plausible price band used for aggregate computations. Prices outside the
// band are excluded from statistics but still returned by raw listing
// queries.
const (
	MinPlausiblePrice = 10.0
	MaxPlausiblePrice = 2000.0
)

// PlausiblePrice reports whether a price falls inside the statistics band.
func PlausiblePrice(p float64) bool {
	return p >= MinPlausiblePrice && p <= MaxPlausiblePrice
}

// Listing is one row of the dataset. Optional numeric fields are pointers so
// absent values serialize as null rather than zero.
type Listing struct {
	ID             int64    `json:"id" db:"id"`
	Name           string   `json:"name" db:"name"`
	HostName       string   `json:"host_name" db:"host_name"`
	RoomType       RoomType `json:"room_type" db:"room_type"`
	Borough        Borough  `json:"neighbourhood_group" db:"neighbourhood_group"`
	Price          float64  `json:"price" db:"price"`
	MinimumNights  int      `json:"minimum_nights" db:"minimum_nights"`
	Availability   int      `json:"availability_365" db:"availability_365"`
	ReviewsPerMo   *float64 `json:"reviews_per_month" db:"reviews_per_month"`
	NumberReviews  int      `json:"number_of_reviews" db:"number_of_reviews"`
	Accommodates   int      `json:"accommodates" db:"accommodates"`
	HostVerified   bool     `json:"host_identity_verified" db:"host_identity_verified"`
	InstantBook    bool     `json:"instant_bookable" db:"instant_bookable"`
	Lat            *float64 `json:"lat" db:"lat"`
	Long           *float64 `json:"long" db:"long"`
	HostListings   int      `json:"calculated_host_listings_count" db:"calculated_host_listings_count"`
}

// MonthlyReviews returns the reviews-per-month value with absent treated as
// zero.
func (l Listing) MonthlyReviews() float64 {
	if l.ReviewsPerMo == nil {
		return 0
	}
	return *l.ReviewsPerMo
}

// HasReviews reports whether the listing carries a reviews-per-month value.
func (l Listing) HasReviews() bool {
	return l.ReviewsPerMo != nil
}
