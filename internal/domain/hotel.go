package domain

import (
	"fmt"
	"slices"
	"strings"
)

type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"min=2"`
	Description string   `json:"description" validate:"min=10"`
	Address     string   `json:"address" validate:"min=5"`
	City        string   `json:"city" validate:"min=2"`
	Country     string   `json:"country" validate:"min=2"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int      `json:"reviewCount"`
	Price       float64  `json:"price" validate:"gte=1"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured,omitempty"`
}

func (h Hotel) Key() string { return h.ID }

func (h Hotel) WithKey(id string) Hotel {
	h.ID = id
	return h
}

// HasAmenities reports whether every wanted amenity is offered.
func (h Hotel) HasAmenities(wanted []string) bool {
	for _, a := range wanted {
		if !slices.Contains(h.Amenities, a) {
			return false
		}
	}
	return true
}

func (h *Hotel) AddAmenity(a string) error {
	a = strings.TrimSpace(a)
	if a == "" {
		return fmt.Errorf("%w: amenity is empty", ErrValidation)
	}
	if slices.Contains(h.Amenities, a) {
		return fmt.Errorf("%w: amenity %q", ErrDuplicateValue, a)
	}
	h.Amenities = append(slices.Clone(h.Amenities), a)
	return nil
}

func (h *Hotel) AddImage(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("%w: image url is empty", ErrValidation)
	}
	if slices.Contains(h.Images, url) {
		return fmt.Errorf("%w: image %q", ErrDuplicateValue, url)
	}
	h.Images = append(slices.Clone(h.Images), url)
	return nil
}

// CheckLists rejects empty or repeated amenities and image urls.
func (h Hotel) CheckLists() error {
	if err := checkList("amenity", h.Amenities); err != nil {
		return err
	}
	return checkList("image", h.Images)
}

func checkList(kind string, vals []string) error {
	seen := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is empty", ErrValidation, kind)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: %s %q", ErrDuplicateValue, kind, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func (h *Hotel) RemoveAmenity(i int) error {
	if i < 0 || i >= len(h.Amenities) {
		return fmt.Errorf("%w: amenity index %d", ErrNotFound, i)
	}
	h.Amenities = slices.Delete(slices.Clone(h.Amenities), i, i+1)
	return nil
}

func (h *Hotel) RemoveImage(i int) error {
	if i < 0 || i >= len(h.Images) {
		return fmt.Errorf("%w: image index %d", ErrNotFound, i)
	}
	h.Images = slices.Delete(slices.Clone(h.Images), i, i+1)
	return nil
}

// HotelPatch carries the admin form fields. Nil fields are left untouched.
// ReviewCount is accumulated elsewhere and cannot be patched.
type HotelPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	Country     *string   `json:"country"`
	Rating      *float64  `json:"rating"`
	Price       *float64  `json:"price"`
	Images      *[]string `json:"images"`
	Amenities   *[]string `json:"amenities"`
	Featured    *bool     `json:"featured"`
}

func (p HotelPatch) Apply(h Hotel) Hotel {
	setIf(&h.Name, p.Name)
	setIf(&h.Description, p.Description)
	setIf(&h.Address, p.Address)
	setIf(&h.City, p.City)
	setIf(&h.Country, p.Country)
	setIf(&h.Rating, p.Rating)
	setIf(&h.Price, p.Price)
	setIf(&h.Featured, p.Featured)
	if p.Images != nil {
		h.Images = slices.Clone(*p.Images)
	}
	if p.Amenities != nil {
		h.Amenities = slices.Clone(*p.Amenities)
	}
	return h
}

type Room struct {
	ID          string   `json:"id"`
	HotelID     string   `json:"hotelId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Available   bool     `json:"available"`
}

func (r Room) Key() string { return r.ID }

func (r Room) WithKey(id string) Room {
	r.ID = id
	return r
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
