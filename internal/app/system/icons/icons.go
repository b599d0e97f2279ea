// internal/app/system/icons/icons.go

// Package icons maps slide iconName keys to renderable glyph metadata. The
// viewer templates and the PDF exporter both resolve icon names through this
// registry; an unknown name degrades to NoIcon instead of failing a render.
package icons

import (
	"fmt"

	"github.com/robinaudi/deckhub/internal/domain/models"
)

// Icon describes one renderable glyph. Glyph is the character drawn by the
// PDF exporter; CSSClass is the class the viewer templates emit.
type Icon struct {
	Name     string
	Glyph    rune
	CSSClass string
}

// NoIcon is the fallback for unknown icon names.
var NoIcon = Icon{Name: "", Glyph: '•', CSSClass: "icon-none"}

// registry holds every icon the seed deck and editor may reference.
var registry = map[string]Icon{
	"Target":         {Name: "Target", Glyph: '◎', CSSClass: "icon-target"},
	"Video":          {Name: "Video", Glyph: '▶', CSSClass: "icon-video"},
	"Bot":            {Name: "Bot", Glyph: '⌘', CSSClass: "icon-bot"},
	"HeartHandshake": {Name: "HeartHandshake", Glyph: '♥', CSSClass: "icon-heart-handshake"},
	"Zap":            {Name: "Zap", Glyph: '⚡', CSSClass: "icon-zap"},
	"Award":          {Name: "Award", Glyph: '★', CSSClass: "icon-award"},
	"CheckCircle":    {Name: "CheckCircle", Glyph: '✓', CSSClass: "icon-check-circle"},
	"ArrowRight":     {Name: "ArrowRight", Glyph: '→', CSSClass: "icon-arrow-right"},
	"Coffee":         {Name: "Coffee", Glyph: '☕', CSSClass: "icon-coffee"},
	"Briefcase":      {Name: "Briefcase", Glyph: '▣', CSSClass: "icon-briefcase"},
	"Mail":           {Name: "Mail", Glyph: '✉', CSSClass: "icon-mail"},
	"Linkedin":       {Name: "Linkedin", Glyph: '∈', CSSClass: "icon-linkedin"},
	"Search":         {Name: "Search", Glyph: '🔍', CSSClass: "icon-search"},
	"ExternalLink":   {Name: "ExternalLink", Glyph: '↗', CSSClass: "icon-external-link"},
}

// Lookup resolves an icon name. Unknown or empty names return NoIcon and
// ok=false; callers render the fallback rather than failing.
func Lookup(name string) (Icon, bool) {
	if ic, ok := registry[name]; ok {
		return ic, true
	}
	return NoIcon, false
}

// ValidateSeed confirms at startup that every icon name referenced by the
// seed deck resolves, so a registry regression is caught before it ships as
// a silent fallback on every slide.
func ValidateSeed() error {
	for i, s := range models.DefaultDeck() {
		if s.IconName != "" {
			if _, ok := Lookup(s.IconName); !ok {
				return fmt.Errorf("seed slide %d references unknown icon %q", i+1, s.IconName)
			}
		}
		for _, item := range s.Content {
			if item.IconName != "" {
				if _, ok := Lookup(item.IconName); !ok {
					return fmt.Errorf("seed slide %d content references unknown icon %q", i+1, item.IconName)
				}
			}
		}
	}
	return nil
}
