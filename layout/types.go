// CLAUDE:SUMMARY Core types for the layout interchange engine — foreign Node tree, native Element tree, FlatElement batch.
// Package layout translates between YOOtheme Pro layout documents and the
// builder's native element model, in both directions.
//
// Import pipeline:
//
//	Parse → wrapper elision → transform → Flatten
//
// Export pipeline:
//
//	Nest → re-wrap (section → row → column) → inverse mapping
//
// The engine is pure: no I/O, no logging, no mutable package state. Mapping
// tables are fixed at compile time, so concurrent imports and exports need no
// coordination.
package layout

// Native element types. The vocabulary is closed; every foreign type maps onto
// one of these (unknown types degrade to TypeContainer).
const (
	TypeHeading   = "heading"
	TypeText      = "text"
	TypeButton    = "button"
	TypeImage     = "image"
	TypeVideo     = "video"
	TypeContainer = "container"
)

// Node is one node of a foreign (YOOtheme Pro) layout tree. A document root
// always has Type "layout" and a non-nil Children slice; descendants carry an
// open vocabulary of type tags.
type Node struct {
	Type     string         `json:"type"`
	Props    map[string]any `json:"props,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// Element is one node of the native element tree. Order is a 0-based index
// among siblings; it defines render order and is unique within a sibling group
// only, not across the whole tree.
type Element struct {
	Type       string            `json:"elementType"`
	Content    string            `json:"content"`
	Styles     map[string]string `json:"styles,omitempty"`
	Attributes map[string]any    `json:"attributes,omitempty"`
	Order      int               `json:"order"`
	Children   []*Element        `json:"children,omitempty"`
}

// FlatElement is an Element stripped of Children and annotated for storage.
//
// LocalID is the record's 1-based position in its batch and doubles as a
// correlation key: the inserter resolves ParentID placeholders through a
// LocalID → real-id map, so insertion does not have to happen strictly in
// batch order. ParentID is nil for page-root elements; otherwise it holds the
// negative placeholder -(parent's LocalID), which always references a record
// appearing earlier in the batch.
type FlatElement struct {
	LocalID    int               `json:"localId"`
	ParentID   *int              `json:"parentId"`
	Type       string            `json:"elementType"`
	Content    string            `json:"content"`
	Styles     map[string]string `json:"styles,omitempty"`
	Attributes map[string]any    `json:"attributes,omitempty"`
	Order      int               `json:"order"`
}
