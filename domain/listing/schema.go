package listing

import "strings"

// Field is a logical column of the listing dataset.
type Field string

const (
	FieldID            Field = "id"
	FieldName          Field = "name"
	FieldHostName      Field = "host_name"
	FieldRoomType      Field = "room_type"
	FieldBorough       Field = "neighbourhood_group"
	FieldPrice         Field = "price"
	FieldMinNights     Field = "minimum_nights"
	FieldAvailability  Field = "availability_365"
	FieldReviewsPerMo  Field = "reviews_per_month"
	FieldNumberReviews Field = "number_of_reviews"
	FieldAccommodates  Field = "accommodates"
	FieldHostVerified  Field = "host_identity_verified"
	FieldInstantBook   Field = "instant_bookable"
	FieldLat           Field = "lat"
	FieldLong          Field = "long"
	FieldHostListings  Field = "calculated_host_listings_count"
)

// columnAliases maps each logical field to the header spellings seen across
// the dataset exports. Resolution happens once at load time; nothing re-reads
// headers per request.
var columnAliases = map[Field][]string{
	FieldID:            {"id"},
	FieldName:          {"name"},
	FieldHostName:      {"host name", "host_name"},
	FieldRoomType:      {"room type", "room_type"},
	FieldBorough:       {"neighbourhood group", "neighbourhood_group"},
	FieldPrice:         {"price_$", "price"},
	FieldMinNights:     {"minimum nights", "minimum_nights"},
	FieldAvailability:  {"availability 365", "availability_365"},
	FieldReviewsPerMo:  {"reviews per month", "reviews_per_month"},
	FieldNumberReviews: {"number of reviews", "number_of_reviews"},
	FieldAccommodates:  {"accommodates"},
	FieldHostVerified:  {"host_identity_verified", "host identity verified"},
	FieldInstantBook:   {"instant_bookable", "instant bookable"},
	FieldLat:           {"lat", "latitude"},
	FieldLong:          {"long", "longitude"},
	FieldHostListings:  {"calculated host listings count", "calculated_host_listings_count", "host_listings"},
}

// requiredFields must resolve for a dataset to be usable.
var requiredFields = []Field{
	FieldID,
	FieldName,
	FieldHostName,
	FieldRoomType,
	FieldBorough,
	FieldPrice,
}

// Schema is the resolved mapping from logical fields to column positions in
// a raw tabular source.
type Schema struct {
	columns map[Field]int
}

// ResolveSchema matches raw headers against the alias table and returns the
// fixed schema for the file. Missing required columns are reported together.
func ResolveSchema(headers []string) (*Schema, []Field) {
	normalized := make(map[string]int, len(headers))
	for i, h := range headers {
		normalized[strings.ToLower(strings.TrimSpace(h))] = i
	}

	schema := &Schema{columns: make(map[Field]int, len(columnAliases))}
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			if idx, ok := normalized[alias]; ok {
				schema.columns[field] = idx
				break
			}
		}
	}

	var missing []Field
	for _, field := range requiredFields {
		if _, ok := schema.columns[field]; !ok {
			missing = append(missing, field)
		}
	}
	return schema, missing
}

// Column returns the column index for a field and whether it was resolved.
func (s *Schema) Column(field Field) (int, bool) {
	idx, ok := s.columns[field]
	return idx, ok
}

// Cell returns the raw cell value for a field in a row, or "" when the field
// is unresolved or the row is short.
func (s *Schema) Cell(row []string, field Field) string {
	idx, ok := s.columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
