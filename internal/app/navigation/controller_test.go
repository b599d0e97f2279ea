// internal/app/navigation/controller_test.go
package navigation_test

import (
	"errors"
	"testing"

	"github.com/robinaudi/deckhub/internal/app/navigation"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

func newController(t *testing.T) *navigation.Controller {
	t.Helper()
	c := navigation.NewController(models.DefaultDeck())
	c.SetSettle(0)
	return c
}

func TestJumpBounds(t *testing.T) {
	c := newController(t)
	c.Jump(4)

	if ok := c.Jump(-1); ok {
		t.Error("Jump(-1) must be refused")
	}
	if ok := c.Jump(len(models.DefaultDeck())); ok {
		t.Error("Jump past the end must be refused")
	}
	if c.Current() != 4 {
		t.Errorf("refused jumps must not move the position: got %d, want 4", c.Current())
	}
	if c.State() != navigation.Idle {
		t.Error("refused jumps must not enter Transitioning")
	}
}

func TestNextPrevBoundaries(t *testing.T) {
	c := newController(t)
	total := len(models.DefaultDeck())

	if ok := c.Prev(); ok {
		t.Error("Prev on the first slide must be refused")
	}

	for i := 1; i < total; i++ {
		if ok := c.Next(); !ok {
			t.Fatalf("Next at slide %d must succeed", i-1)
		}
	}
	if c.Current() != total-1 {
		t.Fatalf("expected to land on the last slide, got %d", c.Current())
	}
	if ok := c.Next(); ok {
		t.Error("Next on the last slide must be refused")
	}

	if ok := c.Prev(); !ok || c.Current() != total-2 {
		t.Errorf("Prev from the last slide: ok=%v current=%d", ok, c.Current())
	}
}

func TestJumpClearsReveal(t *testing.T) {
	c := newController(t)
	c.Jump(2)
	c.ToggleReveal()
	if !c.Revealed() {
		t.Fatal("reveal toggle did not take")
	}

	c.Jump(3)
	if c.Revealed() {
		t.Error("a slide change must clear the reveal state")
	}

	// A refused jump leaves the reveal state alone.
	c.ToggleReveal()
	c.Jump(-5)
	if !c.Revealed() {
		t.Error("a refused jump must not clear the reveal state")
	}
}

func TestSetDeckClampsPosition(t *testing.T) {
	c := newController(t)
	c.Jump(8)

	c.SetDeck(models.DefaultDeck()[:3])
	if c.Current() != 2 {
		t.Errorf("position after shrink: got %d, want 2", c.Current())
	}
	if got := len(c.Slides()); got != 3 {
		t.Errorf("deck length: got %d, want 3", got)
	}
}

func TestJumpInputPageNumber(t *testing.T) {
	c := newController(t)

	idx, err := c.JumpInput(" 3 ")
	if err != nil || idx != 2 {
		t.Fatalf("JumpInput(\"3\"): idx=%d err=%v", idx, err)
	}
	if c.Current() != 2 {
		t.Errorf("position: got %d, want 2", c.Current())
	}

	// Out-of-range numbers fall through to the keyword scan and miss.
	if _, err := c.JumpInput("99"); !errors.Is(err, navigation.ErrTargetNotFound) {
		t.Errorf("JumpInput(\"99\"): got %v, want ErrTargetNotFound", err)
	}
	if c.Current() != 2 {
		t.Errorf("failed input must not move: got %d, want 2", c.Current())
	}
}

func TestJumpInputKeyword(t *testing.T) {
	c := newController(t)
	c.Jump(5)

	// Matches a content line on the opening slide.
	idx, err := c.JumpInput("黃金六秒")
	if err != nil || idx != 0 {
		t.Fatalf("keyword jump: idx=%d err=%v", idx, err)
	}
	if c.Current() != 0 {
		t.Errorf("position: got %d, want 0", c.Current())
	}

	if _, err := c.JumpInput("絕對不存在的關鍵字"); !errors.Is(err, navigation.ErrTargetNotFound) {
		t.Errorf("miss: got %v, want ErrTargetNotFound", err)
	}
}
