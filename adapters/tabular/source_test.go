package tabular

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"nestmetrics/domain/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCoercesRows(t *testing.T) {
	path := writeCSV(t, `id,NAME,host name,neighbourhood group,room type,price_$,minimum nights,availability 365,reviews per month,number of reviews,accommodates,host_identity_verified,instant_bookable,lat,long,calculated host listings count
1001,Sunny Studio,Maria,Brooklyn,Entire home/apt,"$1,200.00",3.0,280,2.1,34,2,verified,True,40.68,-73.94,2
1002,Shared Bunk,Lee,Queens,Shared room,45,1,365,,0,1,unconfirmed,False,,,1
`)

	src := NewSource(path)
	listings, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, int64(1001), first.ID)
	assert.Equal(t, "Sunny Studio", first.Name)
	assert.Equal(t, listing.BoroughBrooklyn, first.Borough)
	assert.Equal(t, listing.RoomEntireHome, first.RoomType)
	assert.InDelta(t, 1200.0, first.Price, 1e-9)
	assert.Equal(t, 3, first.MinimumNights)
	assert.Equal(t, 280, first.Availability)
	require.NotNil(t, first.ReviewsPerMo)
	assert.InDelta(t, 2.1, *first.ReviewsPerMo, 1e-9)
	assert.True(t, first.HostVerified)
	assert.True(t, first.InstantBook)
	require.NotNil(t, first.Lat)
	assert.InDelta(t, 40.68, *first.Lat, 1e-9)

	second := listings[1]
	assert.InDelta(t, 45.0, second.Price, 1e-9)
	assert.Nil(t, second.ReviewsPerMo)
	assert.Nil(t, second.Lat)
	assert.False(t, second.HostVerified)
	assert.False(t, second.InstantBook)
}

func TestLoadSkipsUnusableRows(t *testing.T) {
	path := writeCSV(t, `id,name,host_name,neighbourhood_group,room_type,price
1,Good,Ana,Queens,Private room,95
not-an-id,Bad ID,Ana,Queens,Private room,95
2,Free,Ana,Queens,Private room,0
3,No Price,Ana,Queens,Private room,
4,No Borough,Ana,,Private room,95
`)

	src := NewSource(path)
	listings, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, int64(1), listings[0].ID)
}

func TestLoadMissingRequiredColumns(t *testing.T) {
	path := writeCSV(t, `id,name,room_type
1,Good,Private room
`)

	src := NewSource(path)
	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestLoadEmptyDataset(t *testing.T) {
	path := writeCSV(t, `id,name,host_name,neighbourhood_group,room_type,price
bad,Bad,Ana,Queens,Private room,x
`)

	src := NewSource(path)
	_, err := src.Load(context.Background())
	require.Error(t, err)
}

func TestLoadCancelledContext(t *testing.T) {
	path := writeCSV(t, `id,name,host_name,neighbourhood_group,room_type,price
1,Good,Ana,Queens,Private room,95
`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewSource(path)
	_, err := src.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParsePrice(t *testing.T) {
	cases := map[string]struct {
		want float64
		ok   bool
	}{
		"$1,200.00": {1200, true},
		"95":        {95, true},
		"$80":       {80, true},
		"":          {0, false},
		"abc":       {0, false},
	}
	for raw, expect := range cases {
		got, ok := parsePrice(raw)
		assert.Equal(t, expect.ok, ok, raw)
		if expect.ok {
			assert.InDelta(t, expect.want, got, 1e-9, raw)
		}
	}
}

func TestIntOrDefaultHandlesFloatExports(t *testing.T) {
	assert.Equal(t, 3, intOrDefault("3.0", 0))
	assert.Equal(t, 3, intOrDefault("3", 0))
	assert.Equal(t, 7, intOrDefault("", 7))
	assert.Equal(t, 7, intOrDefault("n/a", 7))
}
