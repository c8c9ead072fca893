package debugscreens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLabels(t *testing.T) {
	tests := []struct {
		name      string
		screens   Screens
		opts      Options
		wantBase  string
		wantMedia map[string]string // query -> label
	}{
		{
			name:     "pixel screens",
			screens:  Screens{{Name: "sm", Size: "640px"}, {Name: "md", Size: "768px"}},
			wantBase: "Screen: less than <sm> (640px)",
			wantMedia: map[string]string{
				"@media (min-width: 640px)": "Screen: <sm> (640px)",
				"@media (min-width: 768px)": "Screen: <md> (768px)",
			},
		},
		{
			name:     "rem screens get pixel annotations",
			screens:  Screens{{Name: "sm", Size: "40rem"}, {Name: "md", Size: "48rem"}},
			wantBase: "Screen: less than <sm> (640px:40rem)",
			wantMedia: map[string]string{
				"@media (min-width: 40rem)": "Screen: <sm> (640px:40rem)",
				"@media (min-width: 48rem)": "Screen: <md> (768px:48rem)",
			},
		},
		{
			name:      "no screens",
			screens:   Screens{},
			wantBase:  "Screen: _",
			wantMedia: map[string]string{},
		},
		{
			name:     "custom prefix",
			screens:  Screens{{Name: "lg", Size: "1024px"}},
			opts:     Options{Prefix: StringPtr("BP ")},
			wantBase: "BP less than <lg> (1024px)",
			wantMedia: map[string]string{
				"@media (min-width: 1024px)": "BP <lg> (1024px)",
			},
		},
		{
			name:     "empty prefix is honoured",
			screens:  Screens{{Name: "lg", Size: "1024px"}},
			opts:     Options{Prefix: StringPtr("")},
			wantBase: "less than <lg> (1024px)",
			wantMedia: map[string]string{
				"@media (min-width: 1024px)": "<lg> (1024px)",
			},
		},
		{
			name:     "empty size is skipped but still labels the base rule",
			screens:  Screens{{Name: "foo", Size: ""}, {Name: "md", Size: "768px"}},
			wantBase: "Screen: less than <foo> ()",
			wantMedia: map[string]string{
				"@media (min-width: 768px)": "Screen: <md> (768px)",
			},
		},
		{
			name:     "ignored screens are left out",
			screens:  Screens{{Name: "sm", Size: "640px"}, {Name: "md", Size: "768px"}},
			opts:     Options{Ignore: []string{"sm"}},
			wantBase: "Screen: less than <md> (768px)",
			wantMedia: map[string]string{
				"@media (min-width: 768px)": "Screen: <md> (768px)",
			},
		},
		{
			name:     "dark is ignored by default",
			screens:  Screens{{Name: "dark", Size: "1px"}, {Name: "sm", Size: "640px"}},
			wantBase: "Screen: less than <sm> (640px)",
			wantMedia: map[string]string{
				"@media (min-width: 640px)": "Screen: <sm> (640px)",
			},
		},
		{
			name:     "same size keeps the later label",
			screens:  Screens{{Name: "tablet", Size: "768px"}, {Name: "md", Size: "768px"}},
			wantBase: "Screen: less than <tablet> (768px)",
			wantMedia: map[string]string{
				"@media (min-width: 768px)": "Screen: <md> (768px)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Generate(tt.screens, tt.opts)
			require.NotNil(t, tree)

			assert.Equal(t, tt.wantBase, tree.Label(""))
			assert.Len(t, tree.Media, len(tt.wantMedia))
			for query, label := range tt.wantMedia {
				_, ok := tree.MediaRule(query)
				require.True(t, ok, "media rule %s not found", query)
				assert.Equal(t, label, tree.Label(query))
			}
		})
	}
}

func TestGenerateMediaOrder(t *testing.T) {
	screens := Screens{
		{Name: "sm", Size: "40rem"},
		{Name: "md", Size: "48rem"},
		{Name: "lg", Size: "64rem"},
	}

	tree := Generate(screens, Options{})

	assert.Equal(t, []string{
		"@media (min-width: 40rem)",
		"@media (min-width: 48rem)",
		"@media (min-width: 64rem)",
	}, tree.Queries())
}

func TestGenerateBaseDeclarations(t *testing.T) {
	tree := Generate(Screens{{Name: "sm", Size: "640px"}}, Options{})

	assert.Equal(t, ".debug-screens::before", tree.Selector)
	assert.Equal(t, Declarations{
		{Property: "content", Value: `"Screen: less than <sm> (640px)"`},
		{Property: "position", Value: "fixed"},
		{Property: "z-index", Value: "2147483647"},
		{Property: "bottom", Value: "6px"},
		{Property: "left", Value: "4px"},
		{Property: "padding", Value: "0.75rem 0.25rem"},
		{Property: "line-height", Value: "1"},
		{Property: "font-size", Value: "12px"},
		{Property: "font-family", Value: "sans-serif"},
		{Property: "border-radius", Value: "5px"},
		{Property: "border", Value: "2px solid #6f84f9ff"},
		{Property: "background-color", Value: "#162ba35f"},
		{Property: "color", Value: "#2e3982ff"},
		{Property: "box-shadow", Value: "0 0 2px 2px #7c75fd3d"},
	}, tree.Declarations)

	rule, ok := tree.MediaRule("@media (min-width: 640px)")
	require.True(t, ok)
	assert.Equal(t, Declarations{{Property: "content", Value: `"Screen: <sm> (640px)"`}}, rule.Declarations)
}

func TestGeneratePosition(t *testing.T) {
	tests := []struct {
		name     string
		position Position
		present  []string
		absent   []string
	}{
		{
			name:     "default bottom left",
			position: Position{},
			present:  []string{"bottom", "left"},
			absent:   []string{"top", "right"},
		},
		{
			name:     "top right",
			position: Position{Y: "top", X: "right"},
			present:  []string{"top", "right"},
			absent:   []string{"bottom", "left"},
		},
		{
			name:     "missing x falls back to left",
			position: Position{Y: "top"},
			present:  []string{"top", "left"},
			absent:   []string{"bottom", "right"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Generate(nil, Options{Position: tt.position})
			for _, prop := range tt.present {
				_, ok := tree.Get(prop)
				assert.True(t, ok, "expected %s", prop)
			}
			for _, prop := range tt.absent {
				_, ok := tree.Get(prop)
				assert.False(t, ok, "unexpected %s", prop)
			}
		})
	}
}

func TestGenerateCustomStyle(t *testing.T) {
	screens := Screens{{Name: "sm", Size: "640px"}}

	t.Run("override keeps other defaults", func(t *testing.T) {
		tree := Generate(screens, Options{Style: map[string]string{"color": "#fff"}})

		color, _ := tree.Get("color")
		assert.Equal(t, "#fff", color)
		bg, _ := tree.Get("background-color")
		assert.Equal(t, "#162ba35f", bg)
		position, _ := tree.Get("position")
		assert.Equal(t, "fixed", position)
		assert.Len(t, tree.Declarations, 14)
	})

	t.Run("camelCase keys collide with defaults", func(t *testing.T) {
		tree := Generate(screens, Options{Style: map[string]string{
			"backgroundColor": "#000",
			"zIndex":          "10",
		}})

		bg, _ := tree.Get("background-color")
		assert.Equal(t, "#000", bg)
		z, _ := tree.Get("z-index")
		assert.Equal(t, "10", z)
		assert.Len(t, tree.Declarations, 14)
	})

	t.Run("new properties are appended", func(t *testing.T) {
		tree := Generate(screens, Options{Style: map[string]string{"opacity": "0.5"}})

		last := tree.Declarations[len(tree.Declarations)-1]
		assert.Equal(t, Declaration{Property: "opacity", Value: "0.5"}, last)
	})

	t.Run("content and position can be overridden", func(t *testing.T) {
		tree := Generate(screens, Options{Style: map[string]string{
			"content":  `"custom"`,
			"position": "absolute",
		}})

		assert.Equal(t, "custom", tree.Label(""))
		position, _ := tree.Get("position")
		assert.Equal(t, "absolute", position)
	})

	t.Run("media key replaces breakpoint content", func(t *testing.T) {
		tree := Generate(screens, Options{Style: map[string]string{
			"@media (min-width: 640px)": `"small"`,
		}})

		assert.Equal(t, "small", tree.Label("@media (min-width: 640px)"))
		assert.Len(t, tree.Media, 1)
	})
}

func TestGenerateSelector(t *testing.T) {
	tree := Generate(nil, Options{Selector: "#app"})
	assert.Equal(t, "#app::before", tree.Selector)
}

func TestGenerateDeterministic(t *testing.T) {
	screens := Screens{{Name: "sm", Size: "40rem"}, {Name: "md", Size: "768px"}}
	opts := Options{Style: map[string]string{"color": "#fff", "opacity": "1", "margin": "0"}}

	assert.Equal(t, Generate(screens, opts), Generate(screens, opts))
}

func TestGenerateNeverPanics(t *testing.T) {
	inputs := []Screens{
		nil,
		{},
		{{Name: "", Size: ""}},
		{{Name: "x", Size: "rem"}},
		{{Name: "y", Size: "abcrem"}},
		{{Name: "z", Size: `"quoted"`}},
	}

	for _, screens := range inputs {
		assert.NotPanics(t, func() {
			tree := Generate(screens, Options{})
			_, ok := tree.Get("content")
			assert.True(t, ok)
		})
	}
}

func TestGenerateEscapesLabels(t *testing.T) {
	tree := Generate(Screens{{Name: `a"b`, Size: "1px"}}, Options{})

	content, _ := tree.Get("content")
	assert.Equal(t, `"Screen: less than <a\"b> (1px)"`, content)
	assert.Equal(t, `Screen: less than <a"b> (1px)`, tree.Label(""))

	tree = Generate(Screens{{Name: "a\nb", Size: "1px"}}, Options{Prefix: StringPtr("Line\n")})

	content, _ = tree.Get("content")
	assert.Equal(t, `"Line\a less than <a\a b> (1px)"`, content)
	assert.NotContains(t, content, "\n")
	assert.Equal(t, "Line\nless than <a\nb> (1px)", tree.Label(""))
	assert.Equal(t, "Line\n<a\nb> (1px)", tree.Label("@media (min-width: 1px)"))
}
