package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wanderlust/internal/app"
	"wanderlust/internal/domain"
)

func testDataset() domain.Dataset {
	return domain.Dataset{
		Users: []domain.User{
			{ID: "u1", Name: "Guest", Email: "guest@example.com", Role: domain.RoleUser},
			{ID: "u2", Name: "Other", Email: "other@example.com", Role: domain.RoleUser},
			{ID: "adm", Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin},
		},
		Hotels: []domain.Hotel{
			{ID: "h1", Name: "Harbour Hotel", Description: "Rooms by the water.", Address: "1 Quay Street",
				City: "Oslo", Country: "Norway", Rating: 4.2, ReviewCount: 87, Price: 150, Amenities: []string{"WiFi"}},
			{ID: "h2", Name: "Forest Inn", Description: "Quiet cabins in the pines.", Address: "9 Pine Road",
				City: "Bergen", Country: "Norway", Rating: 3.8, ReviewCount: 12, Price: 95},
		},
		Rooms: []domain.Room{
			{ID: "r1", HotelID: "h1", Name: "Double", Price: 100, Capacity: 2, Available: true},
			{ID: "r2", HotelID: "h1", Name: "Suite", Price: 251, Capacity: 4, Available: false},
			{ID: "r3", HotelID: "h2", Name: "Cabin", Price: 80, Capacity: 3, Available: true},
		},
	}
}

func newServices(t *testing.T, autoConfirm bool) *app.Services {
	t.Helper()
	svc, err := app.NewServices(testDataset(), autoConfirm)
	require.NoError(t, err)
	return svc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
