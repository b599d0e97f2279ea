// internal/app/features/download/survey.go
package download

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SourceOption is one predefined answer to the "where did you find this?"
// survey question shown before a download.
type SourceOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// OtherKey selects the free-text option.
const OtherKey = "other"

// maxOtherRunes caps the free-text answer. Counted in runes because the
// audience answers in Chinese.
const maxOtherRunes = 50

// SourceOptions lists the survey answers in display order.
var SourceOptions = []SourceOption{
	{Key: "linkedin-feed", Label: "LinkedIn 首頁 / 動態牆"},
	{Key: "linkedin-meetup", Label: "領英小聚 (活動)"},
	{Key: "dadafly", Label: "大大帶我飛 (DaDaFly)"},
	{Key: OtherKey, Label: "其他"},
}

// NormalizeSource validates a survey submission and returns the source
// string recorded in the download log. Predefined options record their
// label; the free-text option records "其他 - <text>".
func NormalizeSource(key, otherText string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("no source selected")
	}

	if key == OtherKey {
		text := strings.TrimSpace(otherText)
		if text == "" {
			return "", fmt.Errorf("other: text is required")
		}
		if n := utf8.RuneCountInString(text); n > maxOtherRunes {
			return "", fmt.Errorf("other: text is %d characters, limit is %d", n, maxOtherRunes)
		}
		return "其他 - " + text, nil
	}

	for _, opt := range SourceOptions {
		if opt.Key == key {
			return opt.Label, nil
		}
	}
	return "", fmt.Errorf("unknown source %q", key)
}
