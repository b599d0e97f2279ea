// internal/app/features/viewer/handler.go

// Package viewer serves the presentation surface: the slide page, the live
// update socket, and the search API. One Hub per process holds the content
// subscription; each socket gets its own navigation and search state.
package viewer

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/search"
	"github.com/robinaudi/deckhub/internal/app/system/auth"
	"github.com/robinaudi/deckhub/internal/app/system/integrity"
)

// Handler is the viewer feature handler.
type Handler struct {
	Hub   *Hub
	Guard *integrity.Guard
	Log   *zap.Logger

	upgrader websocket.Upgrader
}

// NewHandler constructs a viewer Handler.
func NewHandler(hub *Hub, guard *integrity.Guard, logger *zap.Logger) *Handler {
	return &Handler{
		Hub:   hub,
		Guard: guard,
		Log:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// viewerData is the view model for the deck page.
type viewerData struct {
	Title       string
	IsLoggedIn  bool
	UserName    string
	DeckJSON    string
	Offline     bool
	Maintenance bool
}

// ServeViewer handles GET /: the presentation page with the current deck
// inlined so first paint does not wait for the socket.
func (h *Handler) ServeViewer(w http.ResponseWriter, r *http.Request) {
	name, signedIn := "", false
	authorized := false
	if u, ok := auth.CurrentUser(r); ok {
		name, signedIn, authorized = u.Name, true, true
	}

	snap := h.Hub.Latest()
	data := viewerData{
		Title:      "LinkedIn 經營策略分享",
		IsLoggedIn: signedIn,
		UserName:   name,
		Offline:    snap.Offline,
	}

	switch h.Guard.Check(snap.Slides, authorized) {
	case integrity.Clean:
		deck, err := json.Marshal(snap.Slides)
		if err != nil {
			h.Log.Error("viewer: marshal deck", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		data.DeckJSON = string(deck)
	default:
		data.Maintenance = true
	}

	templates.Render(w, r, "viewer", data)
}

// ServeWS handles GET /ws: upgrades to the live session socket.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	_, authorized := auth.CurrentUser(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn("viewer: websocket upgrade failed", zap.Error(err))
		return
	}

	snapshots, cancel := h.Hub.Subscribe()
	sess := newSession(conn, h.Hub.Latest().Slides, h.Guard, authorized, h.Log)
	go sess.run(snapshots, cancel)
}

// ServeSearch handles GET /api/search?q=: stateless search over the current
// deck for clients that do not hold a socket.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	q := query.Get(r, "q")
	results := search.Query(h.Hub.Latest().Slides, q)
	if results == nil {
		results = []search.Result{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(results)
}
