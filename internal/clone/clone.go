// Package clone implements the full extraction-and-generation path: fetch a
// page, gather its styles, inline styles, and reduced DOM tree, then hand
// the payload to the generative collaborator to synthesize an HTML clone.
package clone

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pageclone/internal/domtree"
	"github.com/hyperifyio/pageclone/internal/extract"
	"github.com/hyperifyio/pageclone/internal/fetch"
	"github.com/hyperifyio/pageclone/internal/llm"
	"github.com/hyperifyio/pageclone/internal/robots"
	"github.com/hyperifyio/pageclone/internal/styles"
)

// Content is the basic extracted page content echoed back to the caller.
type Content struct {
	Title      string   `json:"title"`
	Headings   []string `json:"headings"`
	Paragraphs []string `json:"paragraphs"`
}

// Result is the outcome of a successful clone. On failure no partial result
// is produced; the whole operation either fully succeeds or fully fails.
type Result struct {
	Success         bool    `json:"success"`
	OriginalURL     string  `json:"original_url"`
	GeneratedHTML   string  `json:"generated_html"`
	OriginalContent Content `json:"original_content"`
}

// payload collects everything the prompt template needs. Assembled once per
// request and never mutated afterward.
type payload struct {
	URL          string
	Styles       string
	InlineStyles []styles.InlineRule
	DOM          string
	Content      Content
}

// Assembler orchestrates the clone pipeline.
type Assembler struct {
	Client    *fetch.Client
	Styles    *styles.Collector
	Generator *llm.Generator
	// Robots is optional; when set, disallowed pages fail before fetching.
	Robots *robots.Manager
	// MaxDepth bounds DOM reduction. Zero or negative means unbounded.
	MaxDepth int
}

// Clone runs the full pipeline for url. Primary fetch failures keep their
// classified kind; every other failure collapses to a single wrapped error,
// logged with detail here and surfaced opaquely by the API layer.
func (a *Assembler) Clone(ctx context.Context, url string) (*Result, error) {
	if a.Robots != nil {
		if err := a.Robots.Check(ctx, url); err != nil {
			return nil, err
		}
	}
	res, err := a.Client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := extract.Parse(res.Body, res.ContentType)
	if err != nil {
		return nil, fmt.Errorf("clone %s: %w", url, err)
	}

	title, ok := extract.Title(doc)
	if !ok || title == "" {
		title = "Untitled"
	}
	content := Content{
		Title:      title,
		Headings:   extract.Headings(doc),
		Paragraphs: extract.Paragraphs(doc, true),
	}

	bundle := a.Styles.Collect(ctx, doc, url)
	inline := styles.Inline(doc)

	domJSON := "null"
	if body := doc.Find("body").First(); body.Length() > 0 {
		if node := domtree.Reduce(body.Nodes[0], a.MaxDepth); node != nil {
			b, err := json.Marshal(node)
			if err != nil {
				return nil, fmt.Errorf("clone %s: serialize dom: %w", url, err)
			}
			domJSON = string(b)
		}
	}

	prompt, err := renderPrompt(payload{
		URL:          url,
		Styles:       bundle.Serialize(),
		InlineStyles: inline,
		DOM:          domJSON,
		Content:      content,
	})
	if err != nil {
		return nil, fmt.Errorf("clone %s: %w", url, err)
	}

	log.Debug().
		Str("url", url).
		Int("style_bytes", bundle.Size()).
		Int("inline_styles", len(inline)).
		Msg("clone payload assembled")

	generated, err := a.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("clone %s: %w", url, err)
	}

	return &Result{
		Success:         true,
		OriginalURL:     url,
		GeneratedHTML:   generated,
		OriginalContent: content,
	}, nil
}
