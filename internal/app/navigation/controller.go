// internal/app/navigation/controller.go

// Package navigation holds the per-session deck position state machine.
// A controller is owned by exactly one viewer session; it is locked anyway
// because snapshot updates arrive from the content watch while key events
// arrive from the session's socket.
package navigation

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robinaudi/deckhub/internal/domain/models"
)

// ErrTargetNotFound is reported when a free-text jump matches no slide.
// It is a user-visible condition, not a failure of the controller.
var ErrTargetNotFound = errors.New("navigation: no slide matches the input")

// State of the controller.
type State int

const (
	// Idle: displaying the current slide.
	Idle State = iota
	// Transitioning: the brief animated window during a slide change.
	Transitioning
)

// DefaultSettle is the fixed animation settle delay for slide changes.
const DefaultSettle = 300 * time.Millisecond

// Controller tracks the current slide, the answer-reveal toggle, and the
// transition state for one viewer session.
type Controller struct {
	mu       sync.Mutex
	slides   []models.Slide
	current  int
	revealed bool
	state    State

	settle time.Duration
	sleep  func(time.Duration)
}

// NewController creates a controller positioned on slide 0.
func NewController(slides []models.Slide) *Controller {
	return &Controller{
		slides: slides,
		settle: DefaultSettle,
		sleep:  time.Sleep,
	}
}

// SetSettle overrides the transition settle delay. Tests pass 0.
func (c *Controller) SetSettle(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settle = d
}

// SetDeck replaces the slide collection after a live content update. The
// position is clamped so the session never points past the new deck.
func (c *Controller) SetDeck(slides []models.Slide) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slides = slides
	if c.current >= len(slides) {
		c.current = len(slides) - 1
	}
	if c.current < 0 {
		c.current = 0
	}
}

// Slides returns the deck the controller currently navigates.
func (c *Controller) Slides() []models.Slide {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slides
}

// Current returns the zero-based index of the displayed slide.
func (c *Controller) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Revealed reports whether the current slide's answer is shown.
func (c *Controller) Revealed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revealed
}

// State returns Idle or Transitioning.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ToggleReveal flips the answer-shown state of the current slide.
func (c *Controller) ToggleReveal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revealed = !c.revealed
}

// Next advances one slide. Ignored on the last slide.
func (c *Controller) Next() bool { return c.Jump(c.Current() + 1) }

// Prev steps back one slide. Ignored on the first slide.
func (c *Controller) Prev() bool { return c.Jump(c.Current() - 1) }

// Jump moves to the given zero-based index. Requests outside the deck are
// silently ignored and return false; no transition happens. On success the
// controller passes through Transitioning for the settle delay, lands on the
// target slide with the reveal state cleared, and returns true.
func (c *Controller) Jump(index int) bool {
	c.mu.Lock()
	if index < 0 || index >= len(c.slides) {
		c.mu.Unlock()
		return false
	}
	c.state = Transitioning
	settle := c.settle
	sleep := c.sleep
	c.mu.Unlock()

	if settle > 0 {
		sleep(settle)
	}

	c.mu.Lock()
	c.current = index
	c.revealed = false
	c.state = Idle
	c.mu.Unlock()
	return true
}

// JumpInput interprets raw jump-field input: a 1-based page number first,
// then a case-insensitive substring scan over slide titles, content strings,
// and point titles/descriptions. The first matching slide by ascending index
// wins. Returns the landed index, or ErrTargetNotFound.
func (c *Controller) JumpInput(raw string) (int, error) {
	input := strings.TrimSpace(raw)

	c.mu.Lock()
	total := len(c.slides)
	c.mu.Unlock()

	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= total {
		c.Jump(n - 1)
		return n - 1, nil
	}

	keyword := strings.ToLower(input)
	c.mu.Lock()
	target := -1
	for i, s := range c.slides {
		if slideMatchesKeyword(s, keyword) {
			target = i
			break
		}
	}
	c.mu.Unlock()

	if target < 0 {
		return 0, ErrTargetNotFound
	}
	c.Jump(target)
	return target, nil
}

func slideMatchesKeyword(s models.Slide, keyword string) bool {
	if strings.Contains(strings.ToLower(s.Title), keyword) {
		return true
	}
	for _, item := range s.Content {
		if item.IsText() && strings.Contains(strings.ToLower(item.Text), keyword) {
			return true
		}
	}
	for _, p := range s.Points {
		if strings.Contains(strings.ToLower(p.Title), keyword) ||
			strings.Contains(strings.ToLower(p.Desc), keyword) {
			return true
		}
	}
	return false
}
