package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"wanderlust/internal/app"
	"wanderlust/internal/domain"
)

const homePopular = 4

type homeResponse struct {
	Featured []domain.Hotel `json:"featured"`
	Popular  []domain.Hotel `json:"popular"`
}

type searchResponse struct {
	Items    []domain.Hotel `json:"items"`
	Count    int            `json:"count"`
	CheckIn  string         `json:"checkIn,omitempty"`
	CheckOut string         `json:"checkOut,omitempty"`
	Guests   int            `json:"guests,omitempty"`
}

type quoteResponse struct {
	domain.Quote
	RoomID             string `json:"roomId"`
	CheckInSelectable  bool   `json:"checkInSelectable"`
	CheckOutSelectable bool   `json:"checkOutSelectable"`
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, homeResponse{Featured: h.Catalog.Featured(), Popular: h.Catalog.Popular(homePopular)})
}

func (h *Handlers) amenities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Amenities())
}

func (h *Handlers) featuredHotels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Featured())
}

func (h *Handlers) popularHotels(w http.ResponseWriter, r *http.Request) {
	n := homePopular
	if s := r.URL.Query().Get("n"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid n", "n must be a non-negative integer")
			return
		}
		n = v
	}
	writeJSON(w, http.StatusOK, h.Catalog.Popular(n))
}

// searchHotels reads the hotel list filters. "location" is the home form's
// field and takes precedence over "q".
func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := app.SearchFilter{Text: q.Get("location"), Amenities: q["amenity"]}
	if f.Text == "" {
		f.Text = q.Get("q")
	}
	for _, p := range []struct {
		name string
		dst  **float64
	}{{"minPrice", &f.MinPrice}, {"maxPrice", &f.MaxPrice}} {
		s := q.Get(p.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid "+p.name, p.name+" must be a number")
			return
		}
		*p.dst = &v
	}
	guests, _ := strconv.Atoi(q.Get("guests"))

	items := h.Catalog.Search(f)
	writeJSON(w, http.StatusOK, searchResponse{
		Items:    items,
		Count:    len(items),
		CheckIn:  q.Get("checkIn"),
		CheckOut: q.Get("checkOut"),
		Guests:   guests,
	})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	d, err := h.Catalog.Hotel(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeWithETag(w, r, d)
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	room, err := h.Catalog.Room(chi.URLParam(r, "id"), chi.URLParam(r, "roomID"))
	if err != nil {
		writeError(w, err)
		return
	}
	in, err := parseDay(strings.TrimSpace(r.URL.Query().Get("checkIn")))
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := parseDay(strings.TrimSpace(r.URL.Query().Get("checkOut")))
	if err != nil {
		writeError(w, err)
		return
	}
	if in.IsZero() || out.IsZero() {
		writeError(w, domain.ErrIncompleteSelection)
		return
	}
	q, err := app.Quote(room, in, out)
	if err != nil {
		writeError(w, err)
		return
	}
	now := time.Now()
	writeJSON(w, http.StatusOK, quoteResponse{
		Quote:              q,
		RoomID:             room.ID,
		CheckInSelectable:  app.CheckInSelectable(in, now),
		CheckOutSelectable: app.CheckOutSelectable(out, in, now),
	})
}
