// internal/app/search/search_test.go
package search

import (
	"strings"
	"testing"

	"github.com/robinaudi/deckhub/internal/domain/models"
)

func TestQueryEmpty(t *testing.T) {
	deck := models.DefaultDeck()
	if got := Query(deck, ""); got != nil {
		t.Errorf("empty query: got %v, want nil", got)
	}
	if got := Query(deck, "   "); got != nil {
		t.Errorf("whitespace query: got %v, want nil", got)
	}
}

func TestQueryTitlePriorityWins(t *testing.T) {
	// Both the title and a point description contain the query; the title
	// must win and only one result may be produced for the slide.
	slides := []models.Slide{
		{
			Type:  models.SlideConcept,
			Title: "經營莊園的方法",
			Points: []models.Point{
				{Title: "莊園理論", Desc: "經營莊園而不是打獵"},
			},
		},
	}

	results := Query(slides, "莊園")
	if len(results) != 1 {
		t.Fatalf("got %d results, want exactly 1", len(results))
	}
	if results[0].Context != "Title Match" {
		t.Errorf("context: got %q, want %q", results[0].Context, "Title Match")
	}
}

func TestQueryCaseInsensitive(t *testing.T) {
	deck := models.DefaultDeck()
	lower := Query(deck, "linkedin")
	upper := Query(deck, "LINKEDIN")
	if len(lower) == 0 {
		t.Fatal("expected matches for linkedin in the default deck")
	}
	if len(lower) != len(upper) {
		t.Errorf("case sensitivity: %d vs %d results", len(lower), len(upper))
	}
}

func TestQueryNumericSynthesis(t *testing.T) {
	deck := models.DefaultDeck() // ten slides

	results := Query(deck, "3")
	if len(results) == 0 {
		t.Fatal("expected at least the synthetic jump result")
	}
	first := results[0]
	if first.Type != models.SlideNavigation {
		t.Errorf("first result type: got %q, want navigation", first.Type)
	}
	if first.SlideIndex != 2 {
		t.Errorf("slide index: got %d, want 2", first.SlideIndex)
	}
	if first.Title != "Go to Slide 3" {
		t.Errorf("title: got %q", first.Title)
	}
	if first.Subtitle != "Jump to specific page" {
		t.Errorf("subtitle: got %q", first.Subtitle)
	}
	if first.Context != "Page Number" {
		t.Errorf("context: got %q", first.Context)
	}

	for _, r := range Query(deck, "99") {
		if r.Type == models.SlideNavigation {
			t.Error("out-of-range page number must not synthesize a jump result")
		}
	}
}

func TestQueryOneResultPerSlideAscending(t *testing.T) {
	deck := models.DefaultDeck()
	results := Query(deck, "linkedin")

	seen := map[int]bool{}
	last := -1
	for _, r := range results {
		if seen[r.SlideIndex] {
			t.Errorf("slide %d produced more than one result", r.SlideIndex)
		}
		seen[r.SlideIndex] = true
		if r.SlideIndex <= last {
			t.Errorf("results out of order: %d after %d", r.SlideIndex, last)
		}
		last = r.SlideIndex
	}
}

func TestQueryContextLabels(t *testing.T) {
	slides := []models.Slide{
		{Type: models.SlideChecklist, Title: "t1", Checklist: []string{"每天留言十五分鐘"}},
		{Type: models.SlideConcept, Title: "t2", Question: "什麼是弱連結？", Answer: "a"},
		{Type: models.SlideAction, Title: "t3", ActionItem: &models.ActionItem{
			Title: "公式", Code: "[角色] + [成果]", Example: "Backend Dev",
		}},
		{Type: models.SlideAgenda, Title: "t4", Content: []models.ContentItem{
			{ID: "m-04", Title: "內功心法", Desc: "社交貨幣"},
		}},
	}

	cases := []struct {
		query string
		want  string
	}{
		{"留言", "Checklist: 每天留言十五分鐘"},
		{"弱連結", "Q: 什麼是弱連結？"},
		{"成果", "Code Block Match"},
		{"backend", "Example Match"},
		{"內功", "Point: 內功心法"},
		{"m-04", "ID: m-04"},
	}
	for _, tc := range cases {
		results := Query(slides, tc.query)
		if len(results) != 1 {
			t.Errorf("%q: got %d results, want 1", tc.query, len(results))
			continue
		}
		if results[0].Context != tc.want {
			t.Errorf("%q: context %q, want %q", tc.query, results[0].Context, tc.want)
		}
	}
}

func TestQueryDescTruncation(t *testing.T) {
	long := strings.Repeat("佈", 80)
	slides := []models.Slide{
		{Type: models.SlideConcept, Title: "title", Points: []models.Point{
			{Title: "p", Desc: long},
		}},
	}

	results := Query(slides, "佈")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	want := "Desc: ..." + strings.Repeat("佈", 50) + "..."
	if results[0].Context != want {
		t.Errorf("truncation: got %q (len %d)", results[0].Context, len([]rune(results[0].Context)))
	}
}

func TestQueryUntitledSlideDisplay(t *testing.T) {
	slides := []models.Slide{
		{Type: models.SlideConcept, Module: "模組一", Content: []models.ContentItem{
			models.TextItem("找得到的內容"),
		}},
	}

	results := Query(slides, "找得到")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Title != "Slide 1" {
		t.Errorf("fallback title: got %q", results[0].Title)
	}
	if results[0].Subtitle != "模組一" {
		t.Errorf("fallback subtitle: got %q", results[0].Subtitle)
	}
}

func TestIndexCursor(t *testing.T) {
	deck := models.DefaultDeck()
	ix := NewIndex()

	ix.Update(deck, "linkedin")
	n := len(ix.Results())
	if n < 2 {
		t.Fatalf("need at least 2 results for cursor test, got %d", n)
	}
	if ix.Cursor() != 0 {
		t.Errorf("fresh cursor: got %d, want 0", ix.Cursor())
	}

	ix.MoveUp()
	if ix.Cursor() != 0 {
		t.Error("MoveUp at top must clamp")
	}

	for i := 0; i < n+5; i++ {
		ix.MoveDown()
	}
	if ix.Cursor() != n-1 {
		t.Errorf("MoveDown must clamp at %d, got %d", n-1, ix.Cursor())
	}

	sel, ok := ix.Selected()
	if !ok || sel != ix.Results()[n-1] {
		t.Error("Selected must return the result under the cursor")
	}

	// Recompute resets the cursor.
	ix.Update(deck, "莊園")
	if ix.Cursor() != 0 {
		t.Errorf("cursor after update: got %d, want 0", ix.Cursor())
	}

	ix.Update(deck, "zzz-no-match")
	if _, ok := ix.Selected(); ok {
		t.Error("Selected with no results must report ok=false")
	}
}
