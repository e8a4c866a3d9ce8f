package layout

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestIsLayoutDocument(t *testing.T) {
	cases := []struct {
		name string
		json string
		want bool
	}{
		{"valid empty", `{"type":"layout","children":[]}`, true},
		{"valid with children", `{"type":"layout","children":[{"type":"text"}]}`, true},
		{"wrong type tag", `{"type":"document","children":[]}`, false},
		{"missing children", `{"type":"layout"}`, false},
		{"children not array", `{"type":"layout","children":{}}`, false},
		{"null", `null`, false},
		{"array", `[]`, false},
		{"string", `"layout"`, false},
		{"number", `42`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v any
			if err := json.Unmarshal([]byte(tc.json), &v); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := IsLayoutDocument(v); got != tc.want {
				t.Errorf("IsLayoutDocument(%s): got %v, want %v", tc.json, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(`{"type":"layout","children":[{"type":"headline","props":{"content":"Hi"}}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Type != "layout" {
		t.Errorf("Type: got %q, want %q", doc.Type, "layout")
	}
	if len(doc.Children) != 1 {
		t.Fatalf("children: got %d, want 1", len(doc.Children))
	}
	if doc.Children[0].Props["content"] != "Hi" {
		t.Errorf("content prop: got %v, want %q", doc.Children[0].Props["content"], "Hi")
	}
}

func TestParseRejectsNonLayout(t *testing.T) {
	for _, input := range []string{
		`{"type":"document","children":[]}`,
		`{"children":[]}`,
		`[]`,
		`null`,
	} {
		if _, err := Parse([]byte(input)); !errors.Is(err, ErrNotLayout) {
			t.Errorf("Parse(%s): got %v, want ErrNotLayout", input, err)
		}
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrNotLayout) {
		t.Error("invalid JSON should not report ErrNotLayout")
	}
}

func TestParseNormalizesNilChildren(t *testing.T) {
	// "children":[] decodes to an empty non-nil slice either way; guard the
	// invariant that a parsed root always has a non-nil Children slice.
	doc, err := Parse([]byte(`{"type":"layout","children":[]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Children == nil {
		t.Error("Children: got nil, want empty slice")
	}
}
