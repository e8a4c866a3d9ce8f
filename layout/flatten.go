// CLAUDE:SUMMARY Tree↔flat conversion — depth-first flattening with placeholder parent ids, and the Nest inverse.
package layout

import "sort"

// Flatten converts a native element tree into an ordered flat batch with
// explicit parent references, suitable for row-by-row storage insertion.
//
// Traversal is depth-first pre-order: a parent's record is always emitted
// before any of its descendants', so every non-nil ParentID references an
// earlier record in the batch. Descendants link to their parent through the
// negative placeholder -(parent's LocalID); real ids are substituted by the
// inserter, which maps each LocalID to the id the store assigned.
func Flatten(tree []*Element) []FlatElement {
	var out []FlatElement
	for _, el := range tree {
		out = flattenInto(out, el, nil)
	}
	return out
}

func flattenInto(out []FlatElement, el *Element, parentID *int) []FlatElement {
	rec := FlatElement{
		LocalID:    len(out) + 1,
		ParentID:   parentID,
		Type:       el.Type,
		Content:    el.Content,
		Styles:     el.Styles,
		Attributes: el.Attributes,
		Order:      el.Order,
	}
	out = append(out, rec)

	placeholder := -rec.LocalID
	for _, child := range el.Children {
		out = flattenInto(out, child, &placeholder)
	}
	return out
}

// Nest rebuilds a native element tree from a flat batch — the inverse of
// Flatten. ParentID values may be Flatten's negative placeholders or any other
// consistent key space (e.g. real store ids paired with LocalID set to the
// same ids); a record whose ParentID is nil or references an unknown record
// becomes a root. Sibling groups are ordered by their Order field.
func Nest(batch []FlatElement) []*Element {
	byLocal := make(map[int]*Element, len(batch))
	order := make([]int, 0, len(batch))
	for _, rec := range batch {
		byLocal[rec.LocalID] = &Element{
			Type:       rec.Type,
			Content:    rec.Content,
			Styles:     rec.Styles,
			Attributes: rec.Attributes,
			Order:      rec.Order,
		}
		order = append(order, rec.LocalID)
	}

	var roots []*Element
	for _, rec := range batch {
		el := byLocal[rec.LocalID]
		if rec.ParentID == nil {
			roots = append(roots, el)
			continue
		}
		key := *rec.ParentID
		if key < 0 {
			key = -key
		}
		parent, ok := byLocal[key]
		if !ok || parent == el {
			roots = append(roots, el)
			continue
		}
		parent.Children = append(parent.Children, el)
	}

	for _, id := range order {
		sortSiblings(byLocal[id].Children)
	}
	sortSiblings(roots)
	return roots
}

func sortSiblings(els []*Element) {
	sort.SliceStable(els, func(i, j int) bool { return els[i].Order < els[j].Order })
}
