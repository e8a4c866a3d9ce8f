// CLAUDE:SUMMARY Import direction — wrapper elision and recursive foreign→native tree transformation.
package layout

// wrapperTypes are purely structural foreign nodes. They contribute no native
// element; their children are promoted in their place.
var wrapperTypes = map[string]bool{
	"layout":  true,
	"section": true,
	"row":     true,
	"column":  true,
}

// IsWrapper reports whether a foreign type tag is a structural wrapper.
func IsWrapper(foreignType string) bool {
	return wrapperTypes[foreignType]
}

// Import transforms a validated foreign layout document into the native
// element tree. Wrapper chains (layout → section → row → column) are elided,
// so the returned slice holds the document's content-bearing top level.
//
// The document must already have passed IsLayoutDocument / Parse; Import does
// not re-check the root shape.
func Import(doc *Node) []*Element {
	return contentElements(doc, 0)
}

// contentElements implements wrapper elision. A wrapper recurses into its
// children with a fresh 0-based order counter; order values are therefore
// re-assigned per emission context, not preserved across wrapper boundaries.
// A non-wrapper node terminates the recursion and transforms as-is.
func contentElements(n *Node, order int) []*Element {
	if !IsWrapper(n.Type) {
		return []*Element{transformElement(n, order)}
	}
	var out []*Element
	for i, child := range n.Children {
		out = append(out, contentElements(child, i)...)
	}
	return out
}

// transformElement builds one native element from a foreign node. Children of
// a content-bearing node are transformed directly, without a second elision
// pass: once a node is accepted as content, its descendants are treated as
// genuine sub-content (a gallery's images, a grid's cells), not as further
// structural wrappers.
func transformElement(n *Node, order int) *Element {
	el := &Element{
		Type:       MapType(n.Type),
		Content:    ExtractContent(n.Type, n.Props),
		Styles:     MapStyles(n.Props),
		Attributes: ExtractAttributes(n.Type, n.Props),
		Order:      order,
	}
	if len(n.Children) > 0 {
		el.Children = make([]*Element, 0, len(n.Children))
		for i, child := range n.Children {
			el.Children = append(el.Children, transformElement(child, i))
		}
	}
	return el
}

// ImportFlat runs the full import pipeline: elide, transform, flatten.
// The result is ready for a single-pass storage insertion.
func ImportFlat(doc *Node) []FlatElement {
	return Flatten(Import(doc))
}
