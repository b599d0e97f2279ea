// internal/app/features/cms/routes.go
package cms

import (
	"github.com/go-chi/chi/v5"

	"github.com/robinaudi/deckhub/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeConsole)
		pr.Post("/publish", h.ServePublish)
		pr.Post("/reset", h.ServeReset)
		pr.Post("/settings", h.ServeSettings)
		pr.Get("/logs", h.ServeLogs)
	})

	return r
}
