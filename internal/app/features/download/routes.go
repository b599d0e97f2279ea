// internal/app/features/download/routes.go
package download

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/options", h.ServeOptions)
	r.Post("/", h.ServeDownload)
	return r
}
