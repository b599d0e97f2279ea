// internal/app/features/cms/editor.go
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/store/content"
	"github.com/robinaudi/deckhub/internal/app/system/auth"
	"github.com/robinaudi/deckhub/internal/app/system/timeouts"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

// editorData is the view model for the admin console page.
type editorData struct {
	Title      string
	UserName   string
	UserEmail  string
	DeckJSON   string
	Revision   int64
	Mode       string
	Logs       []models.DownloadLogEntry
	LogsFailed bool
}

// ServeConsole handles GET /cms: the editor with the current deck, the
// download-mode setting, and the recent download log in one page.
func (h *Handler) ServeConsole(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	doc, ok, err := h.Content.Get(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "cms: load deck", err, "無法載入簡報內容。", "/")
		return
	}
	slides := doc.Slides
	if !ok {
		slides = models.DefaultDeck()
	}
	deckJSON, err := json.Marshal(slides)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "cms: marshal deck", err, "無法載入簡報內容。", "/")
		return
	}

	settings, err := h.Settings.Get(ctx)
	if err != nil {
		// Degrade to the default rather than blocking the whole console.
		h.Log.Warn("cms: settings fetch failed", zap.Error(err))
		settings = models.DeckSettings{PDFDownloadMode: models.DefaultDownloadMode}
	}

	data := editorData{
		Title:    "DeckHub 管理後台",
		DeckJSON: string(deckJSON),
		Revision: doc.Revision,
		Mode:     settings.PDFDownloadMode,
	}
	if u != nil {
		data.UserName = u.Name
		data.UserEmail = u.Email
	}

	// Log fetch failure degrades to an empty list, also non-blocking.
	logs, err := h.Downloads.Recent(ctx, 50)
	if err != nil {
		h.Log.Warn("cms: download log fetch failed", zap.Error(err))
		data.LogsFailed = true
	} else {
		data.Logs = logs
	}

	templates.Render(w, r, "cms_console", data)
}

// publishRequest is the POST body for a publish.
type publishRequest struct {
	Slides   []models.Slide `json:"slides"`
	Revision int64          `json:"revision"`
}

// publishResponse reports the outcome, including the new revision so the
// editor can keep publishing without a reload.
type publishResponse struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
	Code     string `json:"code,omitempty"`
	Revision int64  `json:"revision,omitempty"`
}

// ServePublish handles POST /cms/publish. The whole deck is replaced in one
// write; a revision check refuses the publish when someone else published
// since this editor loaded.
func (h *Handler) ServePublish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, publishResponse{Error: "無法解析內容。", Code: "invalid_body"})
		return
	}

	h.sanitizeDeck(req.Slides)
	if err := models.ValidateDeck(req.Slides); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, publishResponse{Error: err.Error(), Code: "invalid_deck"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Content.Replace(ctx, req.Slides, req.Revision); err != nil {
		if errors.Is(err, content.ErrRevisionMismatch) {
			writeJSON(w, http.StatusConflict, publishResponse{
				Error: "其他人已發佈新版本，請重新載入後再編輯。",
				Code:  "revision_mismatch",
			})
			return
		}
		h.Log.Error("cms: publish failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, publishResponse{Error: "發佈失敗。", Code: "publish_failed"})
		return
	}

	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("deck published",
			zap.String("email", u.Email),
			zap.Int64("base_revision", req.Revision),
			zap.Int("slides", len(req.Slides)))
	}
	writeJSON(w, http.StatusOK, publishResponse{OK: true, Revision: req.Revision + 1})
}

// ServeReset handles POST /cms/reset: overwrite the deck with the default
// seed. Idempotent; repeated resets leave the same slides.
func (h *Handler) ServeReset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Content.Seed(ctx); err != nil {
		h.Log.Error("cms: reset failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, publishResponse{Error: "重設失敗。", Code: "reset_failed"})
		return
	}

	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("deck reset to defaults", zap.String("email", u.Email))
	}
	writeJSON(w, http.StatusOK, publishResponse{OK: true})
}

// sanitizeDeck strips any markup from every user-authored string in place.
func (h *Handler) sanitizeDeck(slides []models.Slide) {
	clean := h.sanitize.Sanitize

	for i := range slides {
		s := &slides[i]
		s.Title = clean(s.Title)
		s.Subtitle = clean(s.Subtitle)
		s.Module = clean(s.Module)
		s.Quote = clean(s.Quote)
		s.Question = clean(s.Question)
		s.Answer = clean(s.Answer)

		for j := range s.Content {
			c := &s.Content[j]
			c.Text = clean(c.Text)
			c.Title = clean(c.Title)
			c.Desc = clean(c.Desc)
		}
		for j := range s.Points {
			s.Points[j].Title = clean(s.Points[j].Title)
			s.Points[j].Desc = clean(s.Points[j].Desc)
		}
		for j := range s.Checklist {
			s.Checklist[j] = clean(s.Checklist[j])
		}
		if s.ActionItem != nil {
			s.ActionItem.Title = clean(s.ActionItem.Title)
			s.ActionItem.Code = clean(s.ActionItem.Code)
			s.ActionItem.Example = clean(s.ActionItem.Example)
		}
		for j := range s.Articles {
			a := &s.Articles[j]
			a.Title = clean(a.Title)
			a.Subtitle = clean(a.Subtitle)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
