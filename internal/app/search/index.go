// internal/app/search/index.go
package search

import "github.com/robinaudi/deckhub/internal/domain/models"

// Index holds the current result sequence and a keyboard selection cursor.
// It models the search palette's state: the result list is rebuilt per
// keystroke and the cursor resets to the top whenever that happens.
type Index struct {
	results []Result
	cursor  int
}

// NewIndex returns an empty index.
func NewIndex() *Index { return &Index{} }

// Update recomputes the result sequence for the given deck and query and
// resets the selection cursor to the first result.
func (ix *Index) Update(slides []models.Slide, query string) {
	ix.results = Query(slides, query)
	ix.cursor = 0
}

// Results returns the current result sequence in display order.
func (ix *Index) Results() []Result { return ix.results }

// Cursor returns the selected result position.
func (ix *Index) Cursor() int { return ix.cursor }

// MoveDown advances the selection, stopping at the last result.
func (ix *Index) MoveDown() {
	if ix.cursor < len(ix.results)-1 {
		ix.cursor++
	}
}

// MoveUp retreats the selection, stopping at the first result.
func (ix *Index) MoveUp() {
	if ix.cursor > 0 {
		ix.cursor--
	}
}

// Selected returns the result under the cursor, if any.
func (ix *Index) Selected() (Result, bool) {
	if len(ix.results) == 0 {
		return Result{}, false
	}
	return ix.results[ix.cursor], true
}
