package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/app"
	"wanderlust/internal/domain"
)

func validHotel() domain.Hotel {
	return domain.Hotel{
		Name:        "Lakeside",
		Description: "A calm place by the lake.",
		Address:     "3 Shore Lane",
		City:        "Geneva",
		Country:     "Switzerland",
		Rating:      4.5,
		ReviewCount: 300,
		Price:       210,
	}
}

func TestAdmin_CreateHotelResetsReviews(t *testing.T) {
	svc := newServices(t, false)
	h, err := svc.Admin.CreateHotel(validHotel())
	require.NoError(t, err)
	assert.Zero(t, h.ReviewCount)
	assert.Contains(t, h.ID, "hotel_")

	// the catalog sees the same collection
	d, err := svc.Catalog.Hotel(h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lakeside", d.Name)
}

func TestAdmin_CreateHotelValidation(t *testing.T) {
	svc := newServices(t, false)
	tests := []struct {
		name string
		mod  func(*domain.Hotel)
	}{
		{"short name", func(h *domain.Hotel) { h.Name = "X" }},
		{"short description", func(h *domain.Hotel) { h.Description = "tiny" }},
		{"short address", func(h *domain.Hotel) { h.Address = "1 A" }},
		{"rating above five", func(h *domain.Hotel) { h.Rating = 5.5 }},
		{"zero price", func(h *domain.Hotel) { h.Price = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHotel()
			tt.mod(&h)
			_, err := svc.Admin.CreateHotel(h)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Equal(t, 2, svc.Admin.Hotels.Len())
}

func TestAdmin_UpdatePreservesReviewCount(t *testing.T) {
	svc := newServices(t, false)
	name := "Harbour Grand"
	price := 175.0
	h, err := svc.Admin.UpdateHotel("h1", domain.HotelPatch{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Harbour Grand", h.Name)
	assert.Equal(t, 175.0, h.Price)
	assert.Equal(t, 87, h.ReviewCount)
	assert.Equal(t, "Oslo", h.City)

	bad := -1.0
	_, err = svc.Admin.UpdateHotel("h1", domain.HotelPatch{Price: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Admin.UpdateHotel("missing", domain.HotelPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdmin_AmenitiesAndImages(t *testing.T) {
	svc := newServices(t, false)

	h, err := svc.Admin.AddAmenity("h1", "Sauna")
	require.NoError(t, err)
	assert.Equal(t, []string{"WiFi", "Sauna"}, h.Amenities)

	_, err = svc.Admin.AddAmenity("h1", "Sauna")
	assert.ErrorIs(t, err, domain.ErrDuplicateValue)

	h, err = svc.Admin.RemoveAmenity("h1", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sauna"}, h.Amenities)

	_, err = svc.Admin.RemoveAmenity("h1", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	h, err = svc.Admin.AddImage("h2", "https://img.example.com/forest.jpg")
	require.NoError(t, err)
	assert.Len(t, h.Images, 1)

	h, err = svc.Admin.RemoveImage("h2", 0)
	require.NoError(t, err)
	assert.Empty(t, h.Images)
}

func TestAdmin_HotelListsAreSets(t *testing.T) {
	svc := newServices(t, false)

	h := validHotel()
	h.Amenities = []string{"WiFi", "WiFi"}
	_, err := svc.Admin.CreateHotel(h)
	assert.ErrorIs(t, err, domain.ErrDuplicateValue)

	h = validHotel()
	h.Amenities = []string{"WiFi", ""}
	_, err = svc.Admin.CreateHotel(h)
	assert.ErrorIs(t, err, domain.ErrValidation)

	h = validHotel()
	h.Images = []string{"a.jpg", "a.jpg"}
	_, err = svc.Admin.CreateHotel(h)
	assert.ErrorIs(t, err, domain.ErrDuplicateValue)
	assert.Equal(t, 2, svc.Admin.Hotels.Len())

	pool := []string{"Pool", "Pool"}
	_, err = svc.Admin.UpdateHotel("h1", domain.HotelPatch{Amenities: &pool})
	assert.ErrorIs(t, err, domain.ErrDuplicateValue)
	got, err := svc.Admin.Hotels.Get("h1")
	require.NoError(t, err)
	assert.Equal(t, []string{"WiFi"}, got.Amenities)
}

func TestAdmin_Staff(t *testing.T) {
	svc := newServices(t, false)
	m := domain.Staff{Name: "Ola", Email: "ola@example.com", Role: "Manager", Phone: "+47 5555", HotelID: "h1"}

	out, err := svc.Admin.CreateStaff(m)
	require.NoError(t, err)
	assert.Contains(t, out.ID, "staff_")

	m.HotelID = "nowhere"
	_, err = svc.Admin.CreateStaff(m)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	m.HotelID = "h1"
	m.Email = "not-an-email"
	_, err = svc.Admin.CreateStaff(m)
	assert.ErrorIs(t, err, domain.ErrValidation)

	phone := "+47 6666"
	upd, err := svc.Admin.UpdateStaff(out.ID, domain.StaffPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "+47 6666", upd.Phone)
	assert.Equal(t, "Ola", upd.Name)

	require.NoError(t, svc.Admin.Staff.RequestDelete(out.ID))
	_, err = svc.Admin.Staff.ConfirmDelete()
	require.NoError(t, err)
	assert.Zero(t, svc.Admin.Staff.Len())
}

func TestNewStaffStore_UsesGivenHotels(t *testing.T) {
	hotels := app.NewHotelStore()
	staff := app.NewStaffStore(hotels)
	_, err := staff.Create(domain.Staff{Name: "Kim", Email: "kim@example.com", Role: "Chef", Phone: "12345", HotelID: "h1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
