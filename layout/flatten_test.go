package layout

import (
	"reflect"
	"testing"
)

func TestFlattenParentPlaceholders(t *testing.T) {
	tree := []*Element{
		{Type: TypeContainer, Order: 0, Children: []*Element{
			{Type: TypeImage, Content: "/a.jpg", Order: 0},
			{Type: TypeContainer, Order: 1, Children: []*Element{
				{Type: TypeImage, Content: "/b.jpg", Order: 0},
			}},
		}},
		{Type: TypeText, Content: "after", Order: 1},
	}

	batch := Flatten(tree)
	if len(batch) != 5 {
		t.Fatalf("batch: got %d records, want 5", len(batch))
	}

	// Pre-order emission: parent before descendants.
	wantTypes := []string{TypeContainer, TypeImage, TypeContainer, TypeImage, TypeText}
	for i, rec := range batch {
		if rec.Type != wantTypes[i] {
			t.Errorf("record %d: Type got %q, want %q", i, rec.Type, wantTypes[i])
		}
		if rec.LocalID != i+1 {
			t.Errorf("record %d: LocalID got %d, want %d", i, rec.LocalID, i+1)
		}
	}

	wantParents := []*int{nil, ptr(-1), ptr(-1), ptr(-3), nil}
	for i, rec := range batch {
		switch {
		case wantParents[i] == nil:
			if rec.ParentID != nil {
				t.Errorf("record %d: ParentID got %d, want nil", i, *rec.ParentID)
			}
		case rec.ParentID == nil:
			t.Errorf("record %d: ParentID got nil, want %d", i, *wantParents[i])
		case *rec.ParentID != *wantParents[i]:
			t.Errorf("record %d: ParentID got %d, want %d", i, *rec.ParentID, *wantParents[i])
		}
	}
}

func TestFlattenParentAlwaysEarlier(t *testing.T) {
	doc := mustParse(t, `{
		"type": "layout",
		"children": [
			{"type": "section", "children": [
				{"type": "gallery", "children": [
					{"type": "image"}, {"type": "image"}, {"type": "image"}
				]},
				{"type": "grid", "children": [
					{"type": "grid", "children": [{"type": "text"}]}
				]}
			]}
		]
	}`)

	batch := ImportFlat(doc)
	for i, rec := range batch {
		if rec.ParentID == nil {
			continue
		}
		parentPos := -*rec.ParentID // 1-based
		if parentPos < 1 || parentPos > i {
			t.Errorf("record %d: placeholder %d does not reference an earlier record", i, *rec.ParentID)
		}
	}
}

func TestNestInvertsFlatten(t *testing.T) {
	tree := []*Element{
		{Type: TypeHeading, Content: "H", Order: 0, Attributes: map[string]any{"level": 1}},
		{Type: TypeContainer, Order: 1, Children: []*Element{
			{Type: TypeImage, Content: "/a.jpg", Order: 0},
			{Type: TypeImage, Content: "/b.jpg", Order: 1},
		}},
	}

	got := Nest(Flatten(tree))
	if !reflect.DeepEqual(got, tree) {
		t.Errorf("Nest(Flatten(tree)):\n got %+v\nwant %+v", got, tree)
	}
}

func TestNestWithRealIDs(t *testing.T) {
	// The store path: LocalID and ParentID carry real row ids instead of
	// placeholders. Sibling order comes from Order, not batch position.
	parent := 11
	batch := []FlatElement{
		{LocalID: 11, Type: TypeContainer, Order: 0},
		{LocalID: 14, ParentID: &parent, Type: TypeText, Content: "second", Order: 1},
		{LocalID: 12, ParentID: &parent, Type: TypeText, Content: "first", Order: 0},
	}

	roots := Nest(batch)
	if len(roots) != 1 {
		t.Fatalf("roots: got %d, want 1", len(roots))
	}
	kids := roots[0].Children
	if len(kids) != 2 {
		t.Fatalf("children: got %d, want 2", len(kids))
	}
	if kids[0].Content != "first" || kids[1].Content != "second" {
		t.Errorf("sibling order: got %q,%q, want first,second", kids[0].Content, kids[1].Content)
	}
}

func TestNestOrphanBecomesRoot(t *testing.T) {
	missing := 99
	batch := []FlatElement{
		{LocalID: 1, Type: TypeText, Content: "a", Order: 0},
		{LocalID: 2, ParentID: &missing, Type: TypeText, Content: "orphan", Order: 0},
	}
	roots := Nest(batch)
	if len(roots) != 2 {
		t.Fatalf("roots: got %d, want 2 (orphan promoted)", len(roots))
	}
}

func ptr(v int) *int { return &v }
