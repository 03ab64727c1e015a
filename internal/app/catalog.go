package app

import (
	"fmt"
	"strings"

	"wanderlust/internal/domain"
)

// SearchFilter holds the hotel list filters. Zero values disable a filter.
type SearchFilter struct {
	Text      string
	MinPrice  *float64
	MaxPrice  *float64
	Amenities []string
}

// Search returns the hotels matching every active filter, in their original order.
func Search(hotels []domain.Hotel, f SearchFilter) []domain.Hotel {
	term := strings.ToLower(strings.TrimSpace(f.Text))
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if term != "" &&
			!strings.Contains(strings.ToLower(h.Name), term) &&
			!strings.Contains(strings.ToLower(h.City), term) &&
			!strings.Contains(strings.ToLower(h.Country), term) {
			continue
		}
		if f.MinPrice != nil && h.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && h.Price > *f.MaxPrice {
			continue
		}
		if !h.HasAmenities(f.Amenities) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func Featured(hotels []domain.Hotel) []domain.Hotel {
	out := []domain.Hotel{}
	for _, h := range hotels {
		if h.Featured {
			out = append(out, h)
		}
	}
	return out
}

// Amenities returns the distinct amenity labels in first-seen order.
func Amenities(hotels []domain.Hotel) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, h := range hotels {
		for _, a := range h.Amenities {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

type HotelDetail struct {
	domain.Hotel
	Rooms []domain.Room `json:"rooms"`
}

type CatalogService struct {
	hotels *EntityStore[domain.Hotel]
	rooms  *EntityStore[domain.Room]
}

func NewCatalogService(h *EntityStore[domain.Hotel], r *EntityStore[domain.Room]) *CatalogService {
	return &CatalogService{hotels: h, rooms: r}
}

func (s *CatalogService) Search(f SearchFilter) []domain.Hotel {
	return Search(s.hotels.List(), f)
}

func (s *CatalogService) Featured() []domain.Hotel { return Featured(s.hotels.List()) }

func (s *CatalogService) Popular(n int) []domain.Hotel {
	all := s.hotels.List()
	if n >= 0 && n < len(all) {
		all = all[:n]
	}
	return all
}

func (s *CatalogService) Amenities() []string { return Amenities(s.hotels.List()) }

func (s *CatalogService) Hotel(id string) (HotelDetail, error) {
	h, err := s.hotels.Get(id)
	if err != nil {
		return HotelDetail{}, err
	}
	return HotelDetail{Hotel: h, Rooms: s.Rooms(id)}, nil
}

func (s *CatalogService) Rooms(hotelID string) []domain.Room {
	out := []domain.Room{}
	for _, r := range s.rooms.List() {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out
}

// AllRooms returns every room across hotels.
func (s *CatalogService) AllRooms() []domain.Room { return s.rooms.List() }

// Room resolves a room that must belong to hotelID.
func (s *CatalogService) Room(hotelID, roomID string) (domain.Room, error) {
	if _, err := s.hotels.Get(hotelID); err != nil {
		return domain.Room{}, err
	}
	r, err := s.rooms.Get(roomID)
	if err != nil {
		return domain.Room{}, err
	}
	if r.HotelID != hotelID {
		return domain.Room{}, fmt.Errorf("room %q in hotel %q: %w", roomID, hotelID, domain.ErrNotFound)
	}
	return r, nil
}
