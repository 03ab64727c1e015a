package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/domain"
)

func TestAdminOverview(t *testing.T) {
	svc := newServices(t, false)

	now := time.Now().UTC().Truncate(24 * time.Hour)
	var made []domain.Booking
	for i := 0; i < 7; i++ {
		in := now.AddDate(0, 0, 10+i)
		b, err := svc.Bookings.Create(guest, stay(in, in.AddDate(0, 0, 1)))
		require.NoError(t, err)
		made = append(made, b)
	}
	_, err := svc.Bookings.Confirm(made[0].ID)
	require.NoError(t, err)
	_, err = svc.Bookings.Cancel(made[1].ID)
	require.NoError(t, err)

	o := svc.Dashboard.Admin()
	assert.Equal(t, 7, o.TotalBookings)
	assert.Equal(t, 700.0, o.TotalRevenue)
	assert.Equal(t, 5, o.PendingBookings)
	assert.Equal(t, 2, o.AvailableRooms)
	assert.Len(t, o.RecentBookings, 5)

	require.Len(t, o.Hotels, 2)
	assert.Equal(t, "h1", o.Hotels[0].HotelID)
	assert.Equal(t, 2, o.Hotels[0].Rooms)
	assert.Equal(t, 176.0, o.Hotels[0].AvgRoomPrice)
	assert.Equal(t, 1, o.Hotels[1].Rooms)
	assert.Equal(t, 80.0, o.Hotels[1].AvgRoomPrice)
}

func TestUserOverview(t *testing.T) {
	svc := newServices(t, false)
	future := time.Now().AddDate(0, 1, 0)
	past := time.Now().AddDate(0, -1, 0)

	_, err := svc.Bookings.Create(guest, stay(future, future.AddDate(0, 0, 2)))
	require.NoError(t, err)
	_, err = svc.Bookings.Create(guest, stay(past, past.AddDate(0, 0, 1)))
	require.NoError(t, err)

	o := svc.Dashboard.User("u1")
	assert.Len(t, o.Bookings, 2)
	assert.Equal(t, 1, o.Upcoming)
	assert.Equal(t, 300.0, o.TotalSpent)

	assert.Empty(t, svc.Dashboard.User("u2").Bookings)
}
