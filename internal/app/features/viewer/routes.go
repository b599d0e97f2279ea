// internal/app/features/viewer/routes.go
package viewer

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeViewer)
	r.Get("/ws", h.ServeWS)
	return r
}

// SearchRoutes mounts the stateless search API.
func SearchRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeSearch)
	return r
}
