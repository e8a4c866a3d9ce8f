package layout

import (
	"reflect"
	"testing"
)

func TestExtractContent(t *testing.T) {
	cases := []struct {
		name        string
		foreignType string
		props       map[string]any
		want        string
	}{
		{"headline content", "headline", map[string]any{"content": "Title"}, "Title"},
		{"text content", "text", map[string]any{"content": "<p>Body</p>"}, "<p>Body</p>"},
		{"code content", "code", map[string]any{"content": "x := 1"}, "x := 1"},
		{"button label", "button", map[string]any{"text": "Buy now"}, "Buy now"},
		{"button default label", "button", map[string]any{}, "Button"},
		{"button default label nil props", "button", nil, "Button"},
		{"image src", "image", map[string]any{"src": "/img/a.jpg"}, "/img/a.jpg"},
		{"icon name", "icon", map[string]any{"icon": "cart"}, "cart"},
		{"video src", "video", map[string]any{"src": "/v/clip.mp4"}, "/v/clip.mp4"},
		{"unknown type falls back to content", "gallery", map[string]any{"content": "c"}, "c"},
		{"unknown type falls back to text", "gallery", map[string]any{"text": "t"}, "t"},
		{"unknown type no fields", "gallery", map[string]any{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractContent(tc.foreignType, tc.props); got != tc.want {
				t.Errorf("ExtractContent(%q, %v): got %q, want %q", tc.foreignType, tc.props, got, tc.want)
			}
		})
	}
}

func TestExtractAttributes(t *testing.T) {
	cases := []struct {
		name        string
		foreignType string
		props       map[string]any
		want        map[string]any
	}{
		{
			"heading level",
			"headline", map[string]any{"title_element": "h2"},
			map[string]any{"level": 2},
		},
		{
			"malformed heading level dropped",
			"headline", map[string]any{"title_element": "header2"},
			map[string]any{},
		},
		{
			"empty heading level dropped",
			"headline", map[string]any{"title_element": ""},
			map[string]any{},
		},
		{
			"button link and blank target",
			"button", map[string]any{"link": "https://example.com", "link_target": "_blank"},
			map[string]any{"href": "https://example.com", "target": "_blank"},
		},
		{
			"button non-blank target dropped",
			"button", map[string]any{"link": "/about", "link_target": "_self"},
			map[string]any{"href": "/about"},
		},
		{
			"image alt",
			"image", map[string]any{"alt": "A boat"},
			map[string]any{"alt": "A boat"},
		},
		{
			"attributes are type-gated",
			"text", map[string]any{"title_element": "h2", "link": "/x", "alt": "y"},
			map[string]any{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractAttributes(tc.foreignType, tc.props)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExtractAttributes(%q, %v): got %v, want %v", tc.foreignType, tc.props, got, tc.want)
			}
		})
	}
}

func TestParseHeadingLevel(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"h1", 1, true},
		{"h6", 6, true},
		{"h0", 0, true},
		{"h", 0, false},
		{"hh", 0, false},
		{"h10", 0, false},
		{"H2", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseHeadingLevel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseHeadingLevel(%q): got (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
