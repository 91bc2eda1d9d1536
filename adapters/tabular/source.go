package tabular

import (
	"context"
	"log"
	"strconv"
	"strings"

	"nestmetrics/domain/listing"
	"nestmetrics/internal/errors"
	"nestmetrics/ports"
)

// Source loads listings from a CSV/XLSX file through the fixed column
// schema. It implements ports.ListingSource.
type Source struct {
	reader *FileReader
	path   string
}

// NewSource creates a file-backed listing source
func NewSource(filePath string) *Source {
	return &Source{reader: NewFileReader(filePath), path: filePath}
}

// Name identifies the source for startup logging
func (s *Source) Name() string {
	return "file:" + s.path
}

// Load reads the file, resolves the column schema once, and coerces every
// row. Rows missing a usable id, price, room type, or borough are skipped.
func (s *Source) Load(ctx context.Context) ([]listing.Listing, error) {
	table, err := s.reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read dataset file")
	}

	schema, missing := listing.ResolveSchema(table.Headers)
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = string(f)
		}
		return nil, errors.DataUnavailable("dataset is missing required columns: " + strings.Join(names, ", "))
	}

	listings := make([]listing.Listing, 0, len(table.Rows))
	skipped := 0
	for _, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		l, ok := coerceRow(schema, row)
		if !ok {
			skipped++
			continue
		}
		listings = append(listings, l)
	}

	if skipped > 0 {
		log.Printf("[Source] Skipped %d rows with unusable required fields", skipped)
	}
	if len(listings) == 0 {
		return nil, errors.DataUnavailable("dataset contains no usable rows")
	}
	return listings, nil
}

// coerceRow maps one raw row onto the Listing struct. Required fields must
// parse; optional ones degrade to defaults or null.
func coerceRow(schema *listing.Schema, row []string) (listing.Listing, bool) {
	id, err := strconv.ParseInt(schema.Cell(row, listing.FieldID), 10, 64)
	if err != nil {
		return listing.Listing{}, false
	}

	price, ok := parsePrice(schema.Cell(row, listing.FieldPrice))
	if !ok || price <= 0 {
		return listing.Listing{}, false
	}

	roomType := listing.RoomType(schema.Cell(row, listing.FieldRoomType))
	borough := listing.Borough(schema.Cell(row, listing.FieldBorough))
	if roomType == "" || borough == "" {
		return listing.Listing{}, false
	}

	l := listing.Listing{
		ID:            id,
		Name:          schema.Cell(row, listing.FieldName),
		HostName:      schema.Cell(row, listing.FieldHostName),
		RoomType:      roomType,
		Borough:       borough,
		Price:         price,
		MinimumNights: intOrDefault(schema.Cell(row, listing.FieldMinNights), 1),
		Availability:  intOrDefault(schema.Cell(row, listing.FieldAvailability), 0),
		NumberReviews: intOrDefault(schema.Cell(row, listing.FieldNumberReviews), 0),
		Accommodates:  intOrDefault(schema.Cell(row, listing.FieldAccommodates), 1),
		HostVerified:  parseFlag(schema.Cell(row, listing.FieldHostVerified)),
		InstantBook:   parseFlag(schema.Cell(row, listing.FieldInstantBook)),
		ReviewsPerMo:  floatOrNil(schema.Cell(row, listing.FieldReviewsPerMo)),
		Lat:           floatOrNil(schema.Cell(row, listing.FieldLat)),
		Long:          floatOrNil(schema.Cell(row, listing.FieldLong)),
		HostListings:  intOrDefault(schema.Cell(row, listing.FieldHostListings), 1),
	}
	if l.MinimumNights < 1 {
		l.MinimumNights = 1
	}
	return l, true
}

// parsePrice strips currency formatting ("$1,200.00") before parsing
func parsePrice(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimPrefix(raw, "$"), ",", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFlag(raw string) bool {
	switch strings.ToLower(raw) {
	case "t", "true", "1", "yes", "verified":
		return true
	default:
		return false
	}
}

func intOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	// some exports store integers as "3.0"
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(v)
	}
	return def
}

func floatOrNil(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

var _ ports.ListingSource = (*Source)(nil)
