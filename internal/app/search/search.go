// internal/app/search/search.go

// Package search builds the in-memory slide search index. There is no
// persistent index: results are recomputed from the current deck on every
// query change, which is cheap at deck scale and keeps the index trivially
// consistent with live content updates.
package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robinaudi/deckhub/internal/domain/models"
)

// Result is one ephemeral search hit. SlideIndex is zero-based.
type Result struct {
	SlideIndex int              `json:"slideIndex"`
	Title      string           `json:"title"`
	Subtitle   string           `json:"subtitle"`
	Context    string           `json:"context"`
	Type       models.SlideType `json:"type"`
}

// Query matches the deck against a free-text query and returns results in
// display order: the synthetic page-jump result first (when the query is a
// valid 1-based page number), then per-slide text matches by ascending slide
// index. At most one result is produced per slide: the first matching field
// in priority order wins, keeping the list scannable.
func Query(slides []models.Slide, query string) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []Result
	for i, slide := range slides {
		if ctx, ok := matchSlide(slide, q); ok {
			results = append(results, Result{
				SlideIndex: i,
				Title:      displayTitle(slide, i),
				Subtitle:   displaySubtitle(slide),
				Context:    ctx,
				Type:       slide.Type,
			})
		}
	}

	// A numeric query also jumps straight to that page, regardless of
	// whether the slide's text matched.
	if n, err := strconv.Atoi(strings.TrimSpace(query)); err == nil && n >= 1 && n <= len(slides) {
		jump := Result{
			SlideIndex: n - 1,
			Title:      fmt.Sprintf("Go to Slide %d", n),
			Subtitle:   "Jump to specific page",
			Context:    "Page Number",
			Type:       models.SlideNavigation,
		}
		results = append([]Result{jump}, results...)
	}

	return results
}

// matchSlide scans one slide's fields in priority order and returns the
// context string for the first match.
func matchSlide(s models.Slide, q string) (string, bool) {
	has := func(field string) bool {
		return field != "" && strings.Contains(strings.ToLower(field), q)
	}

	switch {
	case has(s.Title):
		return "Title Match", true
	case has(s.Subtitle):
		return "Subtitle Match", true
	case has(s.Module):
		return "Module Match", true
	}

	for _, item := range s.Content {
		if item.IsText() {
			if has(item.Text) {
				return item.Text, true
			}
			continue
		}
		switch {
		case has(item.Title):
			return "Point: " + item.Title, true
		case has(item.Desc):
			return descContext(item.Desc), true
		case has(item.ID):
			return "ID: " + item.ID, true
		}
	}

	for _, p := range s.Points {
		switch {
		case has(p.Title):
			return "Point: " + p.Title, true
		case has(p.Desc):
			return descContext(p.Desc), true
		}
	}

	for _, item := range s.Checklist {
		if has(item) {
			return "Checklist: " + item, true
		}
	}

	switch {
	case has(s.Question):
		return "Q: " + s.Question, true
	case has(s.Answer):
		return "A: " + s.Answer, true
	}

	if a := s.ActionItem; a != nil {
		switch {
		case has(a.Title):
			return "Action: " + a.Title, true
		case has(a.Code):
			return "Code Block Match", true
		case has(a.Example):
			return "Example Match", true
		}
	}

	return "", false
}

// descContext trims long descriptions to a scannable preview.
func descContext(desc string) string {
	r := []rune(desc)
	if len(r) > 50 {
		r = r[:50]
	}
	return fmt.Sprintf("Desc: ...%s...", string(r))
}

func displayTitle(s models.Slide, idx int) string {
	if s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf("Slide %d", idx+1)
}

func displaySubtitle(s models.Slide) string {
	if s.Subtitle != "" {
		return s.Subtitle
	}
	return s.Module
}
