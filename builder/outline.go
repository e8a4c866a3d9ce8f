// CLAUDE:SUMMARY Markdown outline of a page — text digest for the AI assistant.
package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/pagewright/atelier/layout"
)

// Outline renders a page's element tree as a Markdown digest. The AI
// assistant consumes this instead of the raw element rows: headings become
// Markdown headings, rich text is converted from HTML, buttons become links
// and media become image/link references.
func (s *Service) Outline(ctx context.Context, pageID string) (string, error) {
	page, err := s.GetPage(ctx, pageID)
	if err != nil {
		return "", err
	}
	tree, err := s.PageTree(ctx, pageID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", page.Name)
	for _, el := range tree {
		s.outlineElement(&b, el)
	}
	return b.String(), nil
}

func (s *Service) outlineElement(b *strings.Builder, el *layout.Element) {
	switch el.Type {
	case layout.TypeHeading:
		level := 2
		switch v := el.Attributes["level"].(type) {
		case int:
			level = v
		case float64:
			level = int(v)
		}
		if level < 1 || level > 6 {
			level = 2
		}
		fmt.Fprintf(b, "\n%s %s\n", strings.Repeat("#", level), s.toMarkdown(el.Content))
	case layout.TypeText:
		if md := s.toMarkdown(el.Content); md != "" {
			fmt.Fprintf(b, "\n%s\n", md)
		}
	case layout.TypeButton:
		href, _ := el.Attributes["href"].(string)
		if href == "" {
			href = "#"
		}
		fmt.Fprintf(b, "\n[%s](%s)\n", el.Content, href)
	case layout.TypeImage:
		alt, _ := el.Attributes["alt"].(string)
		fmt.Fprintf(b, "\n![%s](%s)\n", alt, el.Content)
	case layout.TypeVideo:
		fmt.Fprintf(b, "\n[video](%s)\n", el.Content)
	}
	for _, child := range el.Children {
		s.outlineElement(b, child)
	}
}

// toMarkdown converts rich-text HTML to Markdown; plain strings pass through
// the converter unchanged apart from whitespace normalization.
func (s *Service) toMarkdown(content string) string {
	if content == "" {
		return ""
	}
	md, err := s.md.ConvertString(content)
	if err != nil {
		// Conversion failures degrade to the raw content.
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(md)
}
