package styles

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// InlineRule records one element carrying a style attribute.
type InlineRule struct {
	Tag   string `json:"tag"`
	ID    string `json:"id"`
	Class string `json:"class"`
	Style string `json:"style"`
}

// Inline returns a record for every element with a non-empty style
// attribute, in document order. Class is the space-joined class list; ID and
// Class default to empty strings. The traversal is read-only.
func Inline(doc *goquery.Document) []InlineRule {
	out := make([]InlineRule, 0)
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style := s.AttrOr("style", "")
		if strings.TrimSpace(style) == "" {
			return
		}
		out = append(out, InlineRule{
			Tag:   goquery.NodeName(s),
			ID:    s.AttrOr("id", ""),
			Class: strings.Join(strings.Fields(s.AttrOr("class", "")), " "),
			Style: style,
		})
	})
	return out
}
