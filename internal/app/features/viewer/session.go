// internal/app/features/viewer/session.go
package viewer

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/navigation"
	"github.com/robinaudi/deckhub/internal/app/search"
	"github.com/robinaudi/deckhub/internal/app/store/content"
	"github.com/robinaudi/deckhub/internal/app/system/integrity"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

// clientMessage is one command from the browser over the viewer socket.
type clientMessage struct {
	Action string `json:"action"`
	Index  int    `json:"index"`
	Input  string `json:"input"`
	Query  string `json:"query"`
}

// serverMessage is the envelope pushed to the browser. Exactly one payload
// group is set per Type.
type serverMessage struct {
	Type string `json:"type"`

	// type "deck"
	Slides      []models.Slide `json:"slides,omitempty"`
	Offline     bool           `json:"offline,omitempty"`
	Maintenance bool           `json:"maintenance,omitempty"`

	// type "state"
	Current  int  `json:"current"`
	Revealed bool `json:"revealed"`

	// type "results"
	Results []search.Result `json:"results,omitempty"`
	Cursor  int             `json:"cursor"`

	// type "notice"
	Message string `json:"message,omitempty"`
}

// session is one connected viewer: a socket, its navigation state, and its
// search cursor. Snapshots from the hub and commands from the socket are
// serialized through run's select loop; writes go through send.
type session struct {
	id         string
	conn       *websocket.Conn
	nav        *navigation.Controller
	index      *search.Index
	guard      *integrity.Guard
	authorized bool
	log        *zap.Logger
}

func newSession(conn *websocket.Conn, slides []models.Slide, guard *integrity.Guard, authorized bool, logger *zap.Logger) *session {
	id := uuid.NewString()
	return &session{
		id:         id,
		conn:       conn,
		nav:        navigation.NewController(slides),
		index:      search.NewIndex(),
		guard:      guard,
		authorized: authorized,
		log:        logger.With(zap.String("session", id)),
	}
}

// run pumps the session until the socket closes or the hub subscription
// ends. Socket reads happen on their own goroutine; everything else runs on
// this one.
func (s *session) run(snapshots <-chan content.Snapshot, cancel func()) {
	defer cancel()
	defer s.conn.Close()

	incoming := make(chan clientMessage)
	readErr := make(chan error, 1)
	go func() {
		for {
			var msg clientMessage
			if err := s.conn.ReadJSON(&msg); err != nil {
				readErr <- err
				return
			}
			incoming <- msg
		}
	}()

	for {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			s.applySnapshot(snap)
		case msg := <-incoming:
			s.handle(msg)
		case err := <-readErr:
			if !errors.Is(err, websocket.ErrCloseSent) &&
				!websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("viewer socket read ended", zap.Error(err))
			}
			return
		}
	}
}

// applySnapshot routes a deck update through the integrity guard, then into
// the session's navigation and search state.
func (s *session) applySnapshot(snap content.Snapshot) {
	switch s.guard.Check(snap.Slides, s.authorized) {
	case integrity.Clean:
		s.nav.SetDeck(snap.Slides)
		s.index.Update(snap.Slides, "")
		s.send(serverMessage{Type: "deck", Slides: snap.Slides, Offline: snap.Offline})
		s.sendState()
	case integrity.Repairing:
		s.send(serverMessage{Type: "deck", Maintenance: true,
			Message: "內容修復中，請稍候。"})
	case integrity.Maintenance:
		s.send(serverMessage{Type: "deck", Maintenance: true,
			Message: "系統維護中，請稍後再試。"})
	}
}

func (s *session) handle(msg clientMessage) {
	switch msg.Action {
	case "next":
		s.nav.Next()
		s.sendState()
	case "prev":
		s.nav.Prev()
		s.sendState()
	case "jump":
		s.nav.Jump(msg.Index)
		s.sendState()
	case "jumpInput":
		if _, err := s.nav.JumpInput(msg.Input); err != nil {
			s.send(serverMessage{Type: "notice", Message: "找不到符合的頁面"})
			return
		}
		s.sendState()
	case "reveal":
		s.nav.ToggleReveal()
		s.sendState()
	case "search":
		s.index.Update(s.currentDeck(), msg.Query)
		s.sendResults()
	case "searchDown":
		s.index.MoveDown()
		s.sendResults()
	case "searchUp":
		s.index.MoveUp()
		s.sendResults()
	case "searchGo":
		if r, ok := s.index.Selected(); ok {
			s.nav.Jump(r.SlideIndex)
			s.sendState()
		}
	default:
		s.log.Debug("viewer: unknown action", zap.String("action", msg.Action))
	}
}

func (s *session) currentDeck() []models.Slide {
	// The controller already holds the deck the guard approved.
	return s.nav.Slides()
}

func (s *session) sendState() {
	s.send(serverMessage{
		Type:     "state",
		Current:  s.nav.Current(),
		Revealed: s.nav.Revealed(),
	})
}

func (s *session) sendResults() {
	s.send(serverMessage{
		Type:    "results",
		Results: s.index.Results(),
		Cursor:  s.index.Cursor(),
	})
}

func (s *session) send(msg serverMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("viewer: marshal message", zap.Error(err))
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.log.Debug("viewer: socket write failed", zap.Error(err))
	}
}
