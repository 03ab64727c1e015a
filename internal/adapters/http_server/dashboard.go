package httpserver

import (
	"net/http"

	"wanderlust/internal/domain"
)

// dashboards picks the view for a role; the role is resolved once per request.
var dashboards = map[domain.Role]func(h *Handlers, u *domain.User) any{
	domain.RoleAdmin: func(h *Handlers, _ *domain.User) any { return h.Dashboard.Admin() },
	domain.RoleUser:  func(h *Handlers, u *domain.User) any { return h.Dashboard.User(u.ID) },
}

type dashboardResponse struct {
	Role domain.Role `json:"role"`
	View any         `json:"view"`
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	u := userFrom(r.Context())
	view, ok := dashboards[u.Role]
	if !ok {
		writeProblem(w, http.StatusForbidden, "Forbidden", "no dashboard for role "+string(u.Role))
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{Role: u.Role, View: view(h, u)})
}

func (h *Handlers) adminOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Dashboard.Admin())
}
