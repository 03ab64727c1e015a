package httpserver

import (
	"net/http"

	"wanderlust/internal/adapters/observability"
	"wanderlust/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User    *domain.User `json:"user"`
	IsAdmin bool         `json:"isAdmin"`
	Loading bool         `json:"loading"`
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	u, err := h.Session.Login(r.Context(), req.Email, req.Password)
	observability.ObserveLogin(err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: &u, IsAdmin: u.IsAdmin()})
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Session.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) currentSession(w http.ResponseWriter, r *http.Request) {
	u, _ := h.Session.Current()
	writeJSON(w, http.StatusOK, sessionResponse{User: u, IsAdmin: h.Session.IsAdmin(), Loading: h.Session.Loading()})
}
