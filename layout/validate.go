// CLAUDE:SUMMARY Structural validation and parsing of foreign layout documents.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotLayout is returned when input is not a foreign layout document.
var ErrNotLayout = errors.New("layout: not a layout document")

// IsLayoutDocument reports whether a JSON-decoded value is shaped like a
// foreign layout document: a non-nil object whose "type" field is the literal
// "layout" and whose "children" field is an array (possibly empty).
//
// This is a shallow type-narrowing predicate; descendants are not inspected.
// Callers must check it before transforming — the transformer itself never
// re-validates.
func IsLayoutDocument(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok || obj == nil {
		return false
	}
	if t, ok := obj["type"].(string); !ok || t != "layout" {
		return false
	}
	_, ok = obj["children"].([]any)
	return ok
}

// Parse decodes raw JSON into a foreign layout tree. It fails with ErrNotLayout
// when the document does not pass IsLayoutDocument, and with a decode error
// when the bytes are not valid JSON at all.
func Parse(data []byte) (*Node, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	if !IsLayoutDocument(probe) {
		return nil, fmt.Errorf("%w: root must be an object with type \"layout\" and a children array", ErrNotLayout)
	}

	var doc Node
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("layout: decode tree: %w", err)
	}
	if doc.Children == nil {
		doc.Children = []*Node{}
	}
	return &doc, nil
}
