package fixtures_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/app"
	"wanderlust/internal/domain"
	"wanderlust/internal/fixtures"
)

func TestLoad_ReferentialIntegrity(t *testing.T) {
	ds, err := fixtures.Embedded{}.LoadDataset(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, ds.Hotels)
	require.NotEmpty(t, ds.Users)

	hotels := map[string]bool{}
	for _, h := range ds.Hotels {
		assert.False(t, hotels[h.ID], "duplicate hotel id %s", h.ID)
		hotels[h.ID] = true
	}
	rooms := map[string]float64{}
	for _, r := range ds.Rooms {
		assert.True(t, hotels[r.HotelID], "room %s references unknown hotel %s", r.ID, r.HotelID)
		rooms[r.ID] = r.Price
	}
	for _, b := range ds.Bookings {
		price, ok := rooms[b.RoomID]
		require.True(t, ok, "booking %s references unknown room", b.ID)
		q, err := app.Quote(domain.Room{Price: price}, b.CheckIn, b.CheckOut)
		require.NoError(t, err)
		assert.Equal(t, q.Total, b.TotalPrice, "booking %s total", b.ID)
	}
}

func TestLoad_SeedsServices(t *testing.T) {
	ds, err := fixtures.Load()
	require.NoError(t, err)
	_, err = app.NewServices(ds, false)
	require.NoError(t, err)
}
