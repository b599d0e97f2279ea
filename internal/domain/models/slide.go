// internal/domain/models/slide.go
package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// SlideType tags which payload fields of a Slide are meaningful and how the
// viewer composes them. The stored documents are stringly typed, so the enum
// is a string; AllSlideTypes is the closed set the editor may publish.
type SlideType string

const (
	SlideIntro     SlideType = "intro"
	SlideAgenda    SlideType = "agenda"
	SlideConcept   SlideType = "concept"
	SlideAction    SlideType = "action"
	SlideStrategy  SlideType = "strategy"
	SlideTrend     SlideType = "trend"
	SlideDeepDive  SlideType = "deep-dive"
	SlideAdvanced  SlideType = "advanced"
	SlideChecklist SlideType = "checklist"
	SlideResource  SlideType = "resource"

	// SlideNavigation is never stored; it tags the synthetic "jump to page"
	// search result.
	SlideNavigation SlideType = "navigation"
)

// AllSlideTypes lists every storable slide variant.
var AllSlideTypes = []SlideType{
	SlideIntro, SlideAgenda, SlideConcept, SlideAction, SlideStrategy,
	SlideTrend, SlideDeepDive, SlideAdvanced, SlideChecklist, SlideResource,
}

// Valid reports whether t is a storable slide variant.
func (t SlideType) Valid() bool {
	for _, v := range AllSlideTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ContentItem is one element of a slide's content sequence. The stored form
// is either a bare string or a {id, title, desc, iconName} record; a bare
// string round-trips through Text with every other field empty.
type ContentItem struct {
	Text     string `bson:"-" json:"-"`
	ID       string `bson:"id,omitempty" json:"id,omitempty"`
	Title    string `bson:"title,omitempty" json:"title,omitempty"`
	Desc     string `bson:"desc,omitempty" json:"desc,omitempty"`
	IconName string `bson:"iconName,omitempty" json:"iconName,omitempty"`
}

// IsText reports whether the item is the bare-string form.
func (c ContentItem) IsText() bool { return c.Text != "" }

// TextItem wraps a bare string as a ContentItem.
func TextItem(s string) ContentItem { return ContentItem{Text: s} }

// contentItemDoc is the record form used for (un)marshalling.
type contentItemDoc struct {
	ID       string `bson:"id,omitempty" json:"id,omitempty"`
	Title    string `bson:"title,omitempty" json:"title,omitempty"`
	Desc     string `bson:"desc,omitempty" json:"desc,omitempty"`
	IconName string `bson:"iconName,omitempty" json:"iconName,omitempty"`
}

func (c ContentItem) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if c.IsText() {
		return bson.MarshalValue(c.Text)
	}
	return bson.MarshalValue(contentItemDoc{ID: c.ID, Title: c.Title, Desc: c.Desc, IconName: c.IconName})
}

func (c *ContentItem) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return err
		}
		*c = ContentItem{Text: s}
		return nil
	case bsontype.EmbeddedDocument:
		var doc contentItemDoc
		if err := bson.UnmarshalValue(t, data, &doc); err != nil {
			return err
		}
		*c = ContentItem{ID: doc.ID, Title: doc.Title, Desc: doc.Desc, IconName: doc.IconName}
		return nil
	default:
		return fmt.Errorf("content item: unsupported BSON type %s", t)
	}
}

func (c ContentItem) MarshalJSON() ([]byte, error) {
	if c.IsText() {
		return json.Marshal(c.Text)
	}
	return json.Marshal(contentItemDoc{ID: c.ID, Title: c.Title, Desc: c.Desc, IconName: c.IconName})
}

func (c *ContentItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ContentItem{Text: s}
		return nil
	}
	var doc contentItemDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*c = ContentItem{ID: doc.ID, Title: doc.Title, Desc: doc.Desc, IconName: doc.IconName}
	return nil
}

// Point is a titled talking point with a description.
type Point struct {
	Title string `bson:"title" json:"title"`
	Desc  string `bson:"desc" json:"desc"`
}

// ActionItem is the worked-example block on action slides.
type ActionItem struct {
	Title   string `bson:"title" json:"title"`
	Code    string `bson:"code" json:"code"`
	Example string `bson:"example" json:"example"`
}

// Article is one linked post on the resource slide.
type Article struct {
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle" json:"subtitle"`
	Link     string `bson:"link" json:"link"`
	Image    string `bson:"image" json:"image"`
}

// Slide is one presentation unit. Which payload fields are set depends on
// Type; the viewer and exporter dispatch on it exhaustively.
type Slide struct {
	Type     SlideType `bson:"type" json:"type"`
	Title    string    `bson:"title" json:"title"`
	Subtitle string    `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Module   string    `bson:"module,omitempty" json:"module,omitempty"`
	IconName string    `bson:"iconName,omitempty" json:"iconName,omitempty"`

	Content   []ContentItem `bson:"content,omitempty" json:"content,omitempty"`
	Points    []Point       `bson:"points,omitempty" json:"points,omitempty"`
	Checklist []string      `bson:"checklist,omitempty" json:"checklist,omitempty"`
	Quote     string        `bson:"quote,omitempty" json:"quote,omitempty"`

	Question   string      `bson:"question,omitempty" json:"question,omitempty"`
	Answer     string      `bson:"answer,omitempty" json:"answer,omitempty"`
	ActionItem *ActionItem `bson:"actionItem,omitempty" json:"actionItem,omitempty"`

	Articles       []Article `bson:"articles,omitempty" json:"articles,omitempty"`
	QRCodeImage    string    `bson:"qrCodeImage,omitempty" json:"qrCodeImage,omitempty"`
	ProfileLink    string    `bson:"profileLink,omitempty" json:"profileLink,omitempty"`
	MentorshipLink string    `bson:"mentorshipLink,omitempty" json:"mentorshipLink,omitempty"`
}

// HasReveal reports whether the slide carries a question/answer pair the
// viewer can reveal.
func (s Slide) HasReveal() bool { return s.Question != "" && s.Answer != "" }

// ValidateDeck checks every slide of a deck the editor wants to publish.
// The integrity guard only inspects slide 0 (its job is catching the one
// known corruption mode); publish validation is stricter so a malformed
// later slide cannot enter the store in the first place.
func ValidateDeck(slides []Slide) error {
	if len(slides) == 0 {
		return fmt.Errorf("deck is empty")
	}
	if slides[0].Type != SlideIntro {
		return fmt.Errorf("slide 1 must be an intro slide, got %q", slides[0].Type)
	}
	for i, s := range slides {
		if !s.Type.Valid() {
			return fmt.Errorf("slide %d: unknown type %q", i+1, s.Type)
		}
		if s.Title == "" {
			return fmt.Errorf("slide %d: title is required", i+1)
		}
	}
	if len(slides[0].Content) == 0 {
		return fmt.Errorf("slide 1: intro content is required")
	}
	return nil
}
