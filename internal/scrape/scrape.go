// Package scrape implements the simple extraction path: fetch a page and
// report its title, H1 headings, and paragraph text.
package scrape

import (
	"context"
	"fmt"

	"github.com/hyperifyio/pageclone/internal/extract"
	"github.com/hyperifyio/pageclone/internal/fetch"
	"github.com/hyperifyio/pageclone/internal/robots"
)

// Summary is the output of the simple scrape path. Title is nil when the
// page has no <title>. Paragraphs keeps empty ones so counts reflect the
// source markup.
type Summary struct {
	RequestedURL string   `json:"requested_url"`
	Title        *string  `json:"title"`
	HeadingsH1   []string `json:"headings_h1"`
	Paragraphs   []string `json:"paragraphs"`
}

// Summarizer orchestrates fetch and parse for the simple scrape path.
type Summarizer struct {
	Client *fetch.Client
	// Robots is optional; when set, disallowed pages fail before fetching.
	Robots *robots.Manager
}

// Summarize fetches and parses url. Fetch failures keep their classified
// kind; anything unexpected during parsing surfaces as a wrapped generic
// error without retry.
func (s *Summarizer) Summarize(ctx context.Context, url string) (*Summary, error) {
	if s.Robots != nil {
		if err := s.Robots.Check(ctx, url); err != nil {
			return nil, err
		}
	}
	res, err := s.Client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := extract.Parse(res.Body, res.ContentType)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", url, err)
	}
	sum := &Summary{
		RequestedURL: url,
		HeadingsH1:   extract.H1s(doc),
		Paragraphs:   extract.Paragraphs(doc, false),
	}
	if t, ok := extract.Title(doc); ok {
		sum.Title = &t
	}
	return sum, nil
}
