// Package extract parses fetched HTML and pulls out the basic page content:
// title, headings, and paragraph text.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// Parse decodes body according to the response Content-Type (and any
// in-document charset hints) and parses it into a queryable document.
func Parse(body []byte, contentType string) (*goquery.Document, error) {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// Title returns the stripped <title> text and whether the document has one.
func Title(doc *goquery.Document) (string, bool) {
	sel := doc.Find("title").First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

// H1s returns the stripped text of every <h1> in document order.
func H1s(doc *goquery.Document) []string {
	return texts(doc.Find("h1"), false)
}

// Headings returns the stripped text of every h1–h6 in document order.
func Headings(doc *goquery.Document) []string {
	return texts(doc.Find("h1, h2, h3, h4, h5, h6"), false)
}

// Paragraphs returns the stripped text of every <p> in document order.
// With skipEmpty, paragraphs whose text strips to nothing are omitted.
func Paragraphs(doc *goquery.Document, skipEmpty bool) []string {
	return texts(doc.Find("p"), skipEmpty)
}

func texts(sel *goquery.Selection, skipEmpty bool) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if t == "" && skipEmpty {
			return
		}
		out = append(out, t)
	})
	return out
}
