package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"wanderlust/internal/adapters/observability"
	"wanderlust/internal/app"
	"wanderlust/internal/domain"
)

type bookingRequest struct {
	HotelID  string `json:"hotelId"`
	RoomID   string `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

// input parses the dates and applies the calendar rules in UTC days: check-in
// after today, and check-out after both check-in and today.
func (b bookingRequest) input(now time.Time) (app.CreateBookingInput, error) {
	in, err := parseDay(b.CheckIn)
	if err != nil {
		return app.CreateBookingInput{}, err
	}
	out, err := parseDay(b.CheckOut)
	if err != nil {
		return app.CreateBookingInput{}, err
	}
	if !in.IsZero() && !app.CheckInSelectable(in, now) {
		return app.CreateBookingInput{}, fmt.Errorf("%w: check-in must be after today", domain.ErrInvalidDateRange)
	}
	if !in.IsZero() && !out.IsZero() && !app.CheckOutSelectable(out, in, now) {
		return app.CreateBookingInput{}, fmt.Errorf("%w: check-out must follow check-in", domain.ErrInvalidDateRange)
	}
	return app.CreateBookingInput{HotelID: b.HotelID, RoomID: b.RoomID, CheckIn: in, CheckOut: out, Guests: b.Guests}, nil
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if !decode(w, r, &req) {
		return
	}
	in, err := req.input(time.Now())
	if err != nil {
		observability.ObserveBooking("create", err)
		writeError(w, err)
		return
	}
	b, err := h.Bookings.Create(userFrom(r.Context()), in)
	observability.ObserveBooking("create", err)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/v1/bookings/"+b.ID)
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handlers) myBookings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Bookings.ForUser(userFrom(r.Context()).ID))
}

func (h *Handlers) cancelMyBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.Bookings.CancelOwn(userFrom(r.Context()).ID, chi.URLParam(r, "id"))
	observability.ObserveBooking("cancel", err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handlers) allBookings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Bookings.All())
}

func (h *Handlers) confirmBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.Bookings.Confirm(chi.URLParam(r, "id"))
	observability.ObserveBooking("confirm", err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.Bookings.Cancel(chi.URLParam(r, "id"))
	observability.ObserveBooking("cancel", err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
