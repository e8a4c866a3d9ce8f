// CLAUDE:SUMMARY Export direction — native tree re-wrapped into a foreign layout document via inverse mapping.
package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// exportTypes is the chosen inverse of typeMap. The forward table is
// many-to-one, so this direction is necessarily lossy: html/code/quotation all
// re-emerge as plain text, icons as images, and containers as sections —
// which wrapper-elide again on re-import, by construction.
var exportTypes = map[string]string{
	TypeHeading:   "headline",
	TypeText:      "text",
	TypeButton:    "button",
	TypeImage:     "image",
	TypeVideo:     "video",
	TypeContainer: "section",
}

// exportFontSizes is the reverse of fontSizes. "16px" is deliberately absent:
// it is both the h6 size and the fallback for unknown tokens, and body text
// should not round-trip into a heading scale.
var exportFontSizes = map[string]string{
	"40px": "h1",
	"32px": "h2",
	"28px": "h3",
	"24px": "h4",
	"20px": "h5",
	"21px": "lead",
	"13px": "small",
}

// Export re-wraps a native element tree into a foreign layout document. The
// page's root elements are grouped under a single section → row → column
// chain, mirroring the structure the importer elides.
//
// Round-trip fidelity is not guaranteed: style tokens collapse many foreign
// values onto fewer native ones, and the inverse tables here pick one
// representative per native value.
func Export(tree []*Element) *Node {
	column := &Node{Type: "column", Children: make([]*Node, 0, len(tree))}
	for _, el := range tree {
		column.Children = append(column.Children, exportElement(el))
	}
	row := &Node{Type: "row", Children: []*Node{column}}
	section := &Node{Type: "section", Children: []*Node{row}}
	return &Node{Type: "layout", Children: []*Node{section}}
}

func exportElement(el *Element) *Node {
	n := &Node{
		Type:  exportType(el.Type),
		Props: exportProps(el),
	}
	if len(el.Children) > 0 {
		n.Children = make([]*Node, 0, len(el.Children))
		for _, child := range el.Children {
			n.Children = append(n.Children, exportElement(child))
		}
	}
	return n
}

func exportType(native string) string {
	if t, ok := exportTypes[native]; ok {
		return t
	}
	return "section"
}

// exportProps reconstructs foreign props from a native element's content,
// styles and attributes by inverting the import rules.
func exportProps(el *Element) map[string]any {
	props := map[string]any{}

	switch el.Type {
	case TypeHeading, TypeText:
		if el.Content != "" {
			props["content"] = el.Content
		}
	case TypeButton:
		if el.Content != "" {
			props["text"] = el.Content
		}
	case TypeImage, TypeVideo:
		if el.Content != "" {
			props["src"] = el.Content
		}
	}

	exportStyles(el.Styles, props)
	exportAttributes(el.Type, el.Attributes, props)

	if len(props) == 0 {
		return nil
	}
	return props
}

func exportStyles(styles map[string]string, props map[string]any) {
	if v, ok := styles["fontSize"]; ok {
		if token, known := exportFontSizes[v]; known {
			props["text_size"] = token
		}
	}
	if v, ok := styles["textAlign"]; ok {
		props["text_align"] = v
	}
	if v, ok := styles["color"]; ok {
		props["color"] = v
	}
	if v, ok := styles["background"]; ok {
		props["background"] = v
	}
	if v, ok := styles["marginTop"]; ok {
		if token, found := nearestScaleToken(v, marginScale); found {
			props["margin"] = token
		}
	}
	if v, ok := styles["padding"]; ok {
		if token, found := nearestScaleToken(v, paddingScale); found {
			props["padding"] = token
		}
	}
	if v, ok := styles["width"]; ok {
		for token, pct := range widthFractions {
			if pct == v {
				props["width_default"] = token
				break
			}
		}
	}
	if styles["position"] == "sticky" {
		props["sticky"] = true
	}
}

func exportAttributes(nativeType string, attrs map[string]any, props map[string]any) {
	switch nativeType {
	case TypeHeading:
		if level, ok := intAttr(attrs, "level"); ok && level >= 1 && level <= 9 {
			props["title_element"] = fmt.Sprintf("h%d", level)
		}
	case TypeButton:
		if v, ok := attrs["href"].(string); ok && v != "" {
			props["link"] = v
		}
		if v, ok := attrs["target"].(string); ok && v == "_blank" {
			props["link_target"] = "_blank"
		}
	case TypeImage:
		if v, ok := attrs["alt"].(string); ok && v != "" {
			props["alt"] = v
		}
	}
}

// nearestScaleToken maps a pixel value back to the closest scale token.
// Unparsable values are dropped.
func nearestScaleToken(px string, scale map[string]string) (string, bool) {
	v, err := strconv.Atoi(strings.TrimSuffix(px, "px"))
	if err != nil {
		return "", false
	}
	best, bestDist := "", -1
	for token, tokenPx := range scale {
		t, err := strconv.Atoi(strings.TrimSuffix(tokenPx, "px"))
		if err != nil {
			continue
		}
		dist := v - t
		if dist < 0 {
			dist = -dist
		}
		// Ties resolve toward the smaller pixel value for determinism.
		if bestDist < 0 || dist < bestDist || (dist == bestDist && t < mustPx(scale[best])) {
			best, bestDist = token, dist
		}
	}
	return best, best != ""
}

func mustPx(s string) int {
	v, _ := strconv.Atoi(strings.TrimSuffix(s, "px"))
	return v
}

// intAttr reads an attribute as int, tolerating the float64 JSON round-trips
// produce.
func intAttr(attrs map[string]any, key string) (int, bool) {
	switch t := attrs[key].(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	default:
		return 0, false
	}
}

// ExportFilename suggests a download file name for an exported page layout.
func ExportFilename(pageName string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, pageName)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "page"
	}
	return slug + "-layout.json"
}
