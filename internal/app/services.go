package app

import (
	"fmt"

	"wanderlust/internal/domain"
)

// Services is the set of stores and services built from one dataset.
// Every instance is independent; nothing is shared through package state.
type Services struct {
	Catalog   *CatalogService
	Bookings  *BookingService
	Admin     *AdminService
	Dashboard *DashboardService
	Users     []domain.User
}

func NewServices(ds domain.Dataset, autoConfirm bool) (*Services, error) {
	hotels := NewHotelStore()
	if err := hotels.Seed(ds.Hotels); err != nil {
		return nil, fmt.Errorf("seed hotels: %w", err)
	}
	rooms := NewEntityStore[domain.Room]("room")
	if err := rooms.Seed(ds.Rooms); err != nil {
		return nil, fmt.Errorf("seed rooms: %w", err)
	}
	bookings := NewEntityStore[domain.Booking]("booking")
	if err := bookings.Seed(ds.Bookings); err != nil {
		return nil, fmt.Errorf("seed bookings: %w", err)
	}
	staff := NewStaffStore(hotels)
	if err := staff.Seed(ds.Staff); err != nil {
		return nil, fmt.Errorf("seed staff: %w", err)
	}

	catalog := NewCatalogService(hotels, rooms)
	bs := NewBookingService(catalog, bookings, autoConfirm)
	admin := NewAdminService(hotels, staff)
	return &Services{
		Catalog:   catalog,
		Bookings:  bs,
		Admin:     admin,
		Dashboard: NewDashboardService(catalog, bs, admin),
		Users:     ds.Users,
	}, nil
}
