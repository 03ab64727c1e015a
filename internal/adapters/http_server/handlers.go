package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wanderlust/internal/app"
	"wanderlust/internal/domain"
)

type Handlers struct {
	Catalog   *app.CatalogService
	Bookings  *app.BookingService
	Admin     *app.AdminService
	Dashboard *app.DashboardService
	Session   *app.SessionStore
	// LoginLimiter throttles POST /v1/session per client IP; nil disables it.
	LoginLimiter *IPLimiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/home", h.home)
		r.Get("/amenities", h.amenities)
		r.Route("/hotels", func(r chi.Router) {
			r.Get("/", h.searchHotels)
			r.Get("/featured", h.featuredHotels)
			r.Get("/popular", h.popularHotels)
			r.Get("/{id}", h.getHotel)
			r.Get("/{id}/rooms/{roomID}/quote", h.quote)
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", h.currentSession)
			r.Delete("/", h.logout)
			if h.LoginLimiter != nil {
				r.With(h.LoginLimiter.Limit).Post("/", h.login)
			} else {
				r.Post("/", h.login)
			}
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)
			r.Get("/dashboard", h.dashboard)
			r.Get("/bookings", h.myBookings)
			r.Post("/bookings", h.createBooking)
			r.Post("/bookings/{id}/cancel", h.cancelMyBooking)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireUser, h.requireAdmin)
			r.Get("/overview", h.adminOverview)
			r.Get("/bookings", h.allBookings)
			r.Post("/bookings/{id}/confirm", h.confirmBooking)
			r.Post("/bookings/{id}/cancel", h.cancelBooking)

			r.Route("/hotels", func(r chi.Router) {
				r.Get("/", h.listHotels)
				r.Post("/", h.createHotel)
				r.Patch("/{id}", h.updateHotel)
				r.Post("/{id}/amenities", h.addAmenity)
				r.Delete("/{id}/amenities/{index}", h.removeAmenity)
				r.Post("/{id}/images", h.addImage)
				r.Delete("/{id}/images/{index}", h.removeImage)
				mountPendingDelete(r, h.Admin.Hotels)
			})
			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.listStaff)
				r.Post("/", h.createStaff)
				r.Patch("/{id}", h.updateStaff)
				mountPendingDelete(r, h.Admin.Staff)
			})
		})
	})
}

// ---- user context ----

type ctxKey int

const userKey ctxKey = iota

func userFrom(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userKey).(*domain.User)
	return u
}

// requireUser resolves the server-wide session; it does not identify the caller.
func (h *Handlers) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := h.Session.Current()
		if !ok {
			writeError(w, domain.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}

func (h *Handlers) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u := userFrom(r.Context()); u == nil || !u.IsAdmin() {
			writeError(w, fmt.Errorf("admin role required: %w", domain.ErrForbidden))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ---- responses ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

var errStatus = []struct {
	err    error
	status int
}{
	// validation first: a staff record naming an unknown hotel wraps both
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrDuplicateValue, http.StatusConflict},
	{domain.ErrInvalidTransition, http.StatusConflict},
	{domain.ErrNoPendingDelete, http.StatusConflict},
	{domain.ErrLoginSuperseded, http.StatusConflict},
	{domain.ErrInvalidDateRange, http.StatusUnprocessableEntity},
	{domain.ErrIncompleteSelection, http.StatusBadRequest},
}

// writeError maps domain errors to problem responses; anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	for _, e := range errStatus {
		if errors.Is(err, e.err) {
			writeProblem(w, e.status, http.StatusText(e.status), err.Error())
			return
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		writeProblem(w, http.StatusGatewayTimeout, "Timeout", "request cancelled")
		return
	}
	log.Error().Err(err).Msg("unhandled error")
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write body")
	}
}

// ---- requests ----

const maxBody = 1 << 20

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return false
	}
	return true
}

// parseDay accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
// An empty string yields the zero time.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date", domain.ErrValidation, s)
	}
	return t, nil
}
