// Package domtree reduces a parsed HTML tree into a compact structural
// summary: non-visual tags pruned, attributes filtered to an allowlist, and
// recursion optionally bounded by depth.
package domtree

import (
	"strings"

	"golang.org/x/net/html"
)

// skipTags prune the element and its whole subtree from the reduced tree.
var skipTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"meta":     {},
	"link":     {},
	"noscript": {},
	"br":       {},
	"hr":       {},
}

// keepAttrs maps lowercased attribute names to their canonical spelling.
// SVG presentation attributes keep their mixed case in the output.
var keepAttrs = map[string]string{
	"class":     "class",
	"id":        "id",
	"viewbox":   "viewBox",
	"d":         "d",
	"fill":      "fill",
	"stroke":    "stroke",
	"cx":        "cx",
	"cy":        "cy",
	"r":         "r",
	"x":         "x",
	"y":         "y",
	"width":     "width",
	"height":    "height",
	"xmlns":     "xmlns",
	"transform": "transform",
}

// Node is one element of the reduced tree. Children is never nil so the
// serialized form always carries an array.
type Node struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Node           `json:"children"`
}

// Reduce walks the tree rooted at n and returns its reduced form, or nil
// when n is not an element or its tag is in the skip set. maxDepth bounds
// recursion; at the boundary children stay empty regardless of the actual
// subtree. maxDepth <= 0 means unbounded.
func Reduce(n *html.Node, maxDepth int) *Node {
	return reduce(n, maxDepth, 0)
}

func reduce(n *html.Node, maxDepth, depth int) *Node {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	tag := strings.ToLower(n.Data)
	if _, skip := skipTags[tag]; skip {
		return nil
	}
	out := &Node{Tag: tag, Children: []*Node{}}
	for _, a := range n.Attr {
		canonical, ok := keepAttrs[strings.ToLower(a.Key)]
		if !ok || a.Val == "" {
			continue
		}
		if out.Attrs == nil {
			out.Attrs = make(map[string]string)
		}
		out.Attrs[canonical] = a.Val
	}
	out.Text = visibleText(n)
	if maxDepth <= 0 || depth < maxDepth-1 {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := reduce(c, maxDepth, depth+1); child != nil {
				out.Children = append(out.Children, child)
			}
		}
	}
	return out
}

// visibleText concatenates the stripped text of n and all descendants,
// excluding subtrees under skip-listed tags.
func visibleText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		switch cur.Type {
		case html.TextNode:
			b.WriteString(strings.TrimSpace(cur.Data))
			return
		case html.ElementNode:
			if cur != n {
				if _, skip := skipTags[strings.ToLower(cur.Data)]; skip {
					return
				}
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
