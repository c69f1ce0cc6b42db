// Package styles gathers a page's stylesheet text (<style> blocks, linked
// sheets, and inline style attributes), compressed and bounded so the result
// fits a character-budgeted model prompt.
package styles

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pageclone/internal/cssmin"
	"github.com/hyperifyio/pageclone/internal/fetch"
)

// DefaultMaxBytes bounds the serialized bundle when the caller does not.
const DefaultMaxBytes = 99999

// provenanceURLChars caps how much of a linked sheet's URL lands in its
// provenance comment.
const provenanceURLChars = 30

// OriginInline tags fragments that came from a <style> block; linked
// fragments carry their resolved URL instead.
const OriginInline = "inline"

// Fragment is one compressed CSS chunk plus where it came from. For linked
// sheets CSS already starts with the provenance comment.
type Fragment struct {
	Origin string
	CSS    string
}

// Bundle is an ordered sequence of fragments with a running byte counter.
// The serialized form never exceeds the max size given to Collect.
type Bundle struct {
	Fragments []Fragment
	size      int
}

// add appends f when the serialized bundle stays within max, counting the
// newline separator. Reports whether the fragment fit.
func (b *Bundle) add(f Fragment, max int) bool {
	cost := len(f.CSS)
	if len(b.Fragments) > 0 {
		cost++
	}
	if b.size+cost > max {
		return false
	}
	b.Fragments = append(b.Fragments, f)
	b.size += cost
	return true
}

// Size returns the serialized length in bytes.
func (b *Bundle) Size() int { return b.size }

// Serialize joins the fragments with newlines.
func (b *Bundle) Serialize() string {
	parts := make([]string, len(b.Fragments))
	for i, f := range b.Fragments {
		parts[i] = f.CSS
	}
	return strings.Join(parts, "\n")
}

// Collector walks a parsed document for style sources. Client performs the
// subsidiary stylesheet fetches and should carry the short timeout; a slow
// or failing sheet is skipped, never fatal.
type Collector struct {
	Client *fetch.Client
	// MaxBytes caps the serialized bundle. Zero means DefaultMaxBytes.
	MaxBytes int
}

// Collect gathers <style> blocks first, then <link rel=stylesheet> sheets,
// both in document order, compressing each fragment and stopping once the
// budget is exhausted. Fragments are all-or-nothing: one that would overflow
// the budget is dropped and ends the scan rather than being truncated, which
// also bounds worst-case latency; sheets later in document order are
// preferentially lost.
func (c *Collector) Collect(ctx context.Context, doc *goquery.Document, baseURL string) *Bundle {
	max := c.MaxBytes
	if max <= 0 {
		max = DefaultMaxBytes
	}
	bundle := &Bundle{}

	doc.Find("style").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if bundle.size >= max {
			return false
		}
		css := cssmin.Compress(s.Text())
		if css == "" {
			return true
		}
		bundle.add(Fragment{Origin: OriginInline, CSS: css}, max)
		return true
	})

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}
	doc.Find(`link[rel~="stylesheet"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if bundle.size >= max {
			return false
		}
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" {
			return true
		}
		resolved := resolveHref(base, href)
		if resolved == "" {
			return true
		}
		res, err := c.Client.Get(ctx, resolved)
		if err != nil {
			// Silent-skip policy: a broken sheet must not abort the page.
			log.Debug().Err(err).Str("stylesheet", resolved).Msg("skipping linked stylesheet")
			return true
		}
		css := cssmin.Compress(string(res.Body))
		frag := Fragment{
			Origin: resolved,
			CSS:    "/* from " + truncate(resolved, provenanceURLChars) + " */" + css,
		}
		return bundle.add(frag, max)
	})

	return bundle
}

// resolveHref makes href absolute against base when it is not already.
func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	if base == nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// truncate keeps at most n bytes of s without splitting a rune, so URLs with
// non-ASCII hosts stay valid UTF-8 inside the provenance comment.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
