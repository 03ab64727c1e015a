package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// transitions lists the statuses reachable from each status.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	HotelID    string        `json:"hotelId"`
	RoomID     string        `json:"roomId"`
	CheckIn    time.Time     `json:"checkIn"`
	CheckOut   time.Time     `json:"checkOut"`
	Guests     int           `json:"guests"`
	Status     BookingStatus `json:"status"`
	TotalPrice float64       `json:"totalPrice"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

func (b Booking) Key() string { return b.ID }

func (b Booking) WithKey(id string) Booking {
	b.ID = id
	return b
}

func (b *Booking) Confirm(now time.Time) error {
	return b.moveTo(StatusConfirmed, now)
}

func (b *Booking) Cancel(now time.Time) error {
	return b.moveTo(StatusCancelled, now)
}

func (b *Booking) moveTo(next BookingStatus, now time.Time) error {
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
	}
	b.Status = next
	b.UpdatedAt = now
	return nil
}

// Quote is the priced result for a prospective stay.
type Quote struct {
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}
