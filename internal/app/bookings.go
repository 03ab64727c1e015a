package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"wanderlust/internal/domain"
)

type CreateBookingInput struct {
	HotelID  string    `json:"hotelId"`
	RoomID   string    `json:"roomId"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Guests   int       `json:"guests"`
}

// BookingService creates bookings and applies status transitions.
// Room availability is a static flag; overlapping stays on one room are not detected.
type BookingService struct {
	catalog     *CatalogService
	bookings    *EntityStore[domain.Booking]
	autoConfirm bool
	now         func() time.Time
}

func NewBookingService(c *CatalogService, b *EntityStore[domain.Booking], autoConfirm bool) *BookingService {
	return &BookingService{catalog: c, bookings: b, autoConfirm: autoConfirm, now: time.Now}
}

// Create books a room for user. New bookings start pending unless auto-confirm is on.
func (s *BookingService) Create(user *domain.User, in CreateBookingInput) (domain.Booking, error) {
	if user == nil {
		return domain.Booking{}, domain.ErrUnauthenticated
	}
	if in.RoomID == "" || in.CheckIn.IsZero() || in.CheckOut.IsZero() || in.Guests < 1 {
		return domain.Booking{}, domain.ErrIncompleteSelection
	}
	room, err := s.catalog.Room(in.HotelID, in.RoomID)
	if err != nil {
		return domain.Booking{}, err
	}
	q, err := Quote(room, in.CheckIn, in.CheckOut)
	if err != nil {
		return domain.Booking{}, err
	}

	now := s.now()
	status := domain.StatusPending
	if s.autoConfirm {
		status = domain.StatusConfirmed
	}
	b, err := s.bookings.Create(domain.Booking{
		UserID:     user.ID,
		HotelID:    in.HotelID,
		RoomID:     room.ID,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Guests:     in.Guests,
		Status:     status,
		TotalPrice: q.Total,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("store booking: %w", err)
	}
	log.Info().
		Str("booking", b.ID).
		Str("user", user.ID).
		Str("room", room.ID).
		Int("nights", q.Nights).
		Float64("total", q.Total).
		Str("status", string(b.Status)).
		Msg("booking created")
	return b, nil
}

func (s *BookingService) Confirm(id string) (domain.Booking, error) {
	return s.transition(id, (*domain.Booking).Confirm)
}

func (s *BookingService) Cancel(id string) (domain.Booking, error) {
	return s.transition(id, (*domain.Booking).Cancel)
}

// CancelOwn cancels a booking on behalf of the user who made it.
func (s *BookingService) CancelOwn(userID, id string) (domain.Booking, error) {
	b, err := s.bookings.Get(id)
	if err != nil {
		return domain.Booking{}, err
	}
	if b.UserID != userID {
		return domain.Booking{}, fmt.Errorf("booking %q: %w", id, domain.ErrForbidden)
	}
	return s.Cancel(id)
}

func (s *BookingService) Get(id string) (domain.Booking, error) { return s.bookings.Get(id) }

func (s *BookingService) All() []domain.Booking { return s.bookings.List() }

func (s *BookingService) ForUser(userID string) []domain.Booking {
	out := []domain.Booking{}
	for _, b := range s.bookings.List() {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *BookingService) transition(id string, step func(*domain.Booking, time.Time) error) (domain.Booking, error) {
	b, err := s.bookings.Mutate(id, func(b domain.Booking) (domain.Booking, error) {
		err := step(&b, s.now())
		return b, err
	})
	if err != nil {
		return domain.Booking{}, err
	}
	log.Info().Str("booking", b.ID).Str("status", string(b.Status)).Msg("booking status changed")
	return b, nil
}
