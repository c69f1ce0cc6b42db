package clone

import (
	"encoding/json"
	"fmt"
	"strings"
)

// clonePromptFormat instructs the model to rebuild the page from the
// extracted payload. The placeholders are filled in renderPrompt.
const clonePromptFormat = `You are an expert web developer who replicates websites with 100%% accuracy. Clone this website with all its styles and structure.

Original URL: %s

CSS Styles Found:
%s

Inline Styles: %s

DOM Structure: %s

Content:
Title: %s
Headings: %s
Paragraphs: %s

Create a complete HTML document that:
1. Includes all the CSS styles (in <style> tags)
2. Preserves the DOM structure and hierarchy
3. Maintains all inline styles
4. Keeps the same visual appearance
5. If you cannot find a specific style, use a default style that matches the original as closely as possible.
6. If you cannot find an image, use a placeholder image.`

func renderPrompt(p payload) (string, error) {
	inline, err := json.Marshal(p.InlineStyles)
	if err != nil {
		return "", fmt.Errorf("serialize inline styles: %w", err)
	}
	return fmt.Sprintf(clonePromptFormat,
		p.URL,
		p.Styles,
		string(inline),
		p.DOM,
		p.Content.Title,
		joinList(p.Content.Headings),
		joinList(p.Content.Paragraphs),
	), nil
}

func joinList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return "- " + strings.Join(items, "\n- ")
}
