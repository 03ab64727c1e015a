package app

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"wanderlust/internal/domain"
)

// AdminService fronts the hotel and staff stores with the admin form rules.
type AdminService struct {
	Hotels *EntityStore[domain.Hotel]
	Staff  *EntityStore[domain.Staff]
}

func NewAdminService(hotels *EntityStore[domain.Hotel], staff *EntityStore[domain.Staff]) *AdminService {
	return &AdminService{Hotels: hotels, Staff: staff}
}

// NewHotelStore returns the hotel collection with form validation attached.
// Amenities and images behave as sets on every write path.
func NewHotelStore() *EntityStore[domain.Hotel] {
	return NewEntityStore("hotel", WithValidation(func(h domain.Hotel) error {
		if err := validateStruct(h); err != nil {
			return err
		}
		return h.CheckLists()
	}))
}

// NewStaffStore validates staff records and requires the assigned hotel to exist.
func NewStaffStore(hotels *EntityStore[domain.Hotel]) *EntityStore[domain.Staff] {
	return NewEntityStore("staff", WithValidation(func(s domain.Staff) error {
		if err := validateStruct(s); err != nil {
			return err
		}
		if _, err := hotels.Get(s.HotelID); err != nil {
			return fmt.Errorf("%w: hotelId: %w", domain.ErrValidation, err)
		}
		return nil
	}))
}

// CreateHotel adds a hotel; new hotels have no reviews yet.
func (s *AdminService) CreateHotel(h domain.Hotel) (domain.Hotel, error) {
	h.ReviewCount = 0
	out, err := s.Hotels.Create(h)
	if err != nil {
		return domain.Hotel{}, err
	}
	log.Info().Str("hotel", out.ID).Str("name", out.Name).Msg("hotel created")
	return out, nil
}

func (s *AdminService) UpdateHotel(id string, p domain.HotelPatch) (domain.Hotel, error) {
	out, err := s.Hotels.Update(id, p)
	if err != nil {
		return domain.Hotel{}, err
	}
	log.Info().Str("hotel", id).Msg("hotel updated")
	return out, nil
}

func (s *AdminService) AddAmenity(hotelID, amenity string) (domain.Hotel, error) {
	return s.Hotels.Mutate(hotelID, func(h domain.Hotel) (domain.Hotel, error) {
		err := h.AddAmenity(amenity)
		return h, err
	})
}

func (s *AdminService) AddImage(hotelID, url string) (domain.Hotel, error) {
	return s.Hotels.Mutate(hotelID, func(h domain.Hotel) (domain.Hotel, error) {
		err := h.AddImage(url)
		return h, err
	})
}

func (s *AdminService) RemoveAmenity(hotelID string, i int) (domain.Hotel, error) {
	return s.Hotels.Mutate(hotelID, func(h domain.Hotel) (domain.Hotel, error) {
		err := h.RemoveAmenity(i)
		return h, err
	})
}

func (s *AdminService) RemoveImage(hotelID string, i int) (domain.Hotel, error) {
	return s.Hotels.Mutate(hotelID, func(h domain.Hotel) (domain.Hotel, error) {
		err := h.RemoveImage(i)
		return h, err
	})
}

func (s *AdminService) CreateStaff(m domain.Staff) (domain.Staff, error) {
	out, err := s.Staff.Create(m)
	if err != nil {
		return domain.Staff{}, err
	}
	log.Info().Str("staff", out.ID).Str("hotel", out.HotelID).Msg("staff created")
	return out, nil
}

func (s *AdminService) UpdateStaff(id string, p domain.StaffPatch) (domain.Staff, error) {
	return s.Staff.Update(id, p)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct[T any](v T) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed %s=%s", domain.ErrValidation, fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("%w: %w", domain.ErrValidation, err)
}
