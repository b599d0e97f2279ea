// internal/app/features/cms/editor_test.go
package cms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/domain/models"
)

// The store-backed paths need a live database; these tests cover the pure
// request handling in front of them.

func testHandler() *Handler {
	return NewHandler(nil, nil, nil, nil, zap.NewNop())
}

func TestSanitizeDeckStripsMarkup(t *testing.T) {
	h := testHandler()

	slides := []models.Slide{
		{
			Type:     models.SlideIntro,
			Title:    "<b>標題</b>",
			Subtitle: "<i>副標</i>",
			Quote:    "<u>引言</u>",
			Content: []models.ContentItem{
				models.TextItem("<em>內容</em>"),
				{Title: "<b>卡片</b>", Desc: "<span>說明</span>"},
			},
			Points:    []models.Point{{Title: "<b>重點</b>", Desc: "<b>描述</b>"}},
			Checklist: []string{"<b>清單</b>"},
			ActionItem: &models.ActionItem{
				Title: "<b>行動</b>", Code: "<b>公式</b>", Example: "<b>範例</b>",
			},
			Articles: []models.Article{{Title: "<b>文章</b>", Subtitle: "<b>出處</b>"}},
		},
	}

	h.sanitizeDeck(slides)

	s := slides[0]
	checks := map[string]string{
		"title":          s.Title,
		"subtitle":       s.Subtitle,
		"quote":          s.Quote,
		"content text":   s.Content[0].Text,
		"content title":  s.Content[1].Title,
		"content desc":   s.Content[1].Desc,
		"point title":    s.Points[0].Title,
		"point desc":     s.Points[0].Desc,
		"checklist":      s.Checklist[0],
		"action title":   s.ActionItem.Title,
		"action code":    s.ActionItem.Code,
		"action example": s.ActionItem.Example,
		"article title":  s.Articles[0].Title,
		"article sub":    s.Articles[0].Subtitle,
	}
	for field, v := range checks {
		if strings.ContainsAny(v, "<>") {
			t.Errorf("%s still contains markup: %q", field, v)
		}
		if v == "" {
			t.Errorf("%s lost its text entirely", field)
		}
	}
}

func TestServePublishRejectsBadInput(t *testing.T) {
	h := testHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cms/publish", strings.NewReader("{broken"))
	h.ServePublish(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: got %d, want 400", rec.Code)
	}

	// A structurally invalid deck is refused before any write.
	body, _ := json.Marshal(map[string]any{
		"slides":   []models.Slide{{Type: models.SlideConcept, Title: "not an intro"}},
		"revision": int64(3),
	})
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/cms/publish", strings.NewReader(string(body)))
	h.ServePublish(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid deck: got %d, want 422", rec.Code)
	}
	var resp publishResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != "invalid_deck" {
		t.Errorf("code: %q", resp.Code)
	}
}
