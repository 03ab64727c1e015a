package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wanderlust/internal/app"
	"wanderlust/internal/domain"
)

type valueRequest struct {
	Value string `json:"value"`
}

type pendingResponse struct {
	ID      string `json:"id,omitempty"`
	Pending bool   `json:"pending"`
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Hotels.List())
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var in domain.Hotel
	if !decode(w, r, &in) {
		return
	}
	out, err := h.Admin.CreateHotel(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var p domain.HotelPatch
	if !decode(w, r, &p) {
		return
	}
	out, err := h.Admin.UpdateHotel(chi.URLParam(r, "id"), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) addAmenity(w http.ResponseWriter, r *http.Request) {
	h.addValue(w, r, h.Admin.AddAmenity)
}

func (h *Handlers) addImage(w http.ResponseWriter, r *http.Request) {
	h.addValue(w, r, h.Admin.AddImage)
}

func (h *Handlers) removeAmenity(w http.ResponseWriter, r *http.Request) {
	h.removeAt(w, r, h.Admin.RemoveAmenity)
}

func (h *Handlers) removeImage(w http.ResponseWriter, r *http.Request) {
	h.removeAt(w, r, h.Admin.RemoveImage)
}

func (h *Handlers) addValue(w http.ResponseWriter, r *http.Request, add func(string, string) (domain.Hotel, error)) {
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	out, err := add(chi.URLParam(r, "id"), req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) removeAt(w http.ResponseWriter, r *http.Request, remove func(string, int) (domain.Hotel, error)) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid index", "index must be an integer")
		return
	}
	out, err := remove(chi.URLParam(r, "id"), i)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) listStaff(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Admin.Staff.List())
}

func (h *Handlers) createStaff(w http.ResponseWriter, r *http.Request) {
	var in domain.Staff
	if !decode(w, r, &in) {
		return
	}
	out, err := h.Admin.CreateStaff(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) updateStaff(w http.ResponseWriter, r *http.Request) {
	var p domain.StaffPatch
	if !decode(w, r, &p) {
		return
	}
	out, err := h.Admin.UpdateStaff(chi.URLParam(r, "id"), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// mountPendingDelete adds direct and two-step delete routes for one collection.
func mountPendingDelete[T app.Entity[T]](rt chi.Router, store *app.EntityStore[T]) {
	rt.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	rt.Get("/delete", func(w http.ResponseWriter, r *http.Request) {
		id, ok := store.PendingDelete()
		writeJSON(w, http.StatusOK, pendingResponse{ID: id, Pending: ok})
	})
	rt.Post("/{id}/delete-request", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := store.RequestDelete(id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, pendingResponse{ID: id, Pending: true})
	})
	rt.Post("/delete/confirm", func(w http.ResponseWriter, r *http.Request) {
		id, err := store.ConfirmDelete()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pendingResponse{ID: id})
	})
	rt.Post("/delete/cancel", func(w http.ResponseWriter, r *http.Request) {
		store.CancelDelete()
		writeJSON(w, http.StatusOK, pendingResponse{})
	})
}
