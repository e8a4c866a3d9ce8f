// CLAUDE:SUMMARY Per-type content and attribute extraction rules for foreign elements.
package layout

// ExtractContent pulls a foreign element's primary text or media value.
// Rules are keyed by foreign type; types without a dedicated rule fall back
// to the content prop, then the text prop, then the empty string. Buttons
// default to "Button" when no label is present — the only place in the whole
// pipeline that invents content.
func ExtractContent(foreignType string, props map[string]any) string {
	switch foreignType {
	case "headline", "heading", "text", "html", "code", "quotation":
		s, _ := stringProp(props, "content")
		return s
	case "button":
		if s, ok := stringProp(props, "text"); ok {
			return s
		}
		return "Button"
	case "image":
		s, _ := stringProp(props, "src")
		return s
	case "icon":
		s, _ := stringProp(props, "icon")
		return s
	case "video":
		s, _ := stringProp(props, "src")
		return s
	default:
		if s, ok := stringProp(props, "content"); ok {
			return s
		}
		if s, ok := stringProp(props, "text"); ok {
			return s
		}
		return ""
	}
}

// ExtractAttributes pulls structural attributes from a foreign element's
// props. Extraction is type-gated; a malformed sub-value (e.g. a title_element
// that is not "h"+digit) contributes nothing rather than failing.
func ExtractAttributes(foreignType string, props map[string]any) map[string]any {
	attrs := map[string]any{}

	switch foreignType {
	case "headline", "heading":
		if v, ok := stringProp(props, "title_element"); ok {
			if level, ok := parseHeadingLevel(v); ok {
				attrs["level"] = level
			}
		}
	case "button", "link":
		if v, ok := stringProp(props, "link"); ok && v != "" {
			attrs["href"] = v
		}
		// Only the literal _blank survives; other target values are dropped.
		if v, ok := stringProp(props, "link_target"); ok && v == "_blank" {
			attrs["target"] = "_blank"
		}
	case "image":
		if v, ok := stringProp(props, "alt"); ok && v != "" {
			attrs["alt"] = v
		}
	}

	return attrs
}

// parseHeadingLevel parses tokens like "h2" into the integer 2. Accepts
// exactly "h" followed by one digit.
func parseHeadingLevel(s string) (int, bool) {
	if len(s) != 2 || s[0] != 'h' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[1] - '0'), true
}
