package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchemaSpacedHeaders(t *testing.T) {
	headers := []string{
		"id", "NAME", "host name", "neighbourhood group", "room type",
		"price_$", "minimum nights", "availability 365", "reviews per month",
		"number of reviews", "accommodates", "host_identity_verified",
		"instant_bookable", "lat", "long", "calculated host listings count",
	}

	schema, missing := ResolveSchema(headers)
	require.Empty(t, missing)

	idx, ok := schema.Column(FieldPrice)
	require.True(t, ok)
	assert.Equal(t, 5, idx)

	idx, ok = schema.Column(FieldBorough)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestResolveSchemaUnderscoredHeaders(t *testing.T) {
	headers := []string{
		"id", "name", "host_name", "neighbourhood_group", "room_type", "price",
	}

	schema, missing := ResolveSchema(headers)
	require.Empty(t, missing)

	idx, ok := schema.Column(FieldRoomType)
	require.True(t, ok)
	assert.Equal(t, 4, idx)

	_, ok = schema.Column(FieldLat)
	assert.False(t, ok)
}

func TestResolveSchemaReportsMissingRequired(t *testing.T) {
	_, missing := ResolveSchema([]string{"id", "name", "room type"})
	assert.Contains(t, missing, FieldHostName)
	assert.Contains(t, missing, FieldBorough)
	assert.Contains(t, missing, FieldPrice)
}

func TestSchemaCell(t *testing.T) {
	schema, missing := ResolveSchema([]string{"id", "name", "host_name", "neighbourhood_group", "room_type", "price"})
	require.Empty(t, missing)

	row := []string{"42", "  Cozy Loft  ", "Ana", "Queens", "Private room", "$95"}
	assert.Equal(t, "Cozy Loft", schema.Cell(row, FieldName))
	assert.Equal(t, "$95", schema.Cell(row, FieldPrice))

	// Short rows and unresolved fields read as empty.
	assert.Equal(t, "", schema.Cell(row[:2], FieldPrice))
	assert.Equal(t, "", schema.Cell(row, FieldLat))
}

func TestPlausiblePriceBand(t *testing.T) {
	assert.False(t, PlausiblePrice(9.99))
	assert.True(t, PlausiblePrice(10))
	assert.True(t, PlausiblePrice(2000))
	assert.False(t, PlausiblePrice(2000.01))
}

func TestCategoricalCodes(t *testing.T) {
	assert.Equal(t, 0, RoomEntireHome.Code())
	assert.Equal(t, 2, RoomSharedRoom.Code())
	assert.Equal(t, 0, RoomType("Castle").Code())

	assert.Equal(t, 0, BoroughManhattan.Code())
	assert.Equal(t, 4, BoroughStatenIsland.Code())
	assert.True(t, BoroughQueens.Known())
	assert.False(t, Borough("Atlantis").Known())
}
