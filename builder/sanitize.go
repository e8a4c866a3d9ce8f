// CLAUDE:SUMMARY Rich-text sanitizing of imported element content.
package builder

import "github.com/pagewright/atelier/layout"

// richTextTypes are the native types whose content is rendered as HTML and
// therefore passes through the sanitizer. Media types carry URLs, not markup.
var richTextTypes = map[string]bool{
	layout.TypeHeading: true,
	layout.TypeText:    true,
	layout.TypeButton:  true,
}

// sanitizeContent strips unsafe markup from rich-text content. Imported
// documents are untrusted files picked by the user; script and event-handler
// payloads must not reach the canvas.
func (s *Service) sanitizeContent(elementType, content string) string {
	if !richTextTypes[elementType] || content == "" {
		return content
	}
	return s.sanitizer.Sanitize(content)
}
