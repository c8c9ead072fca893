package debugscreens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeInPixels(t *testing.T) {
	tests := []struct {
		size string
		want string
	}{
		{"48rem", "768px"},
		{"40rem", "640px"},
		{"640px", ""},
		{"", ""},
		{"2.5rem", "32px"}, // Leading integer only
		{" 3rem", "48px"},
		{"-1rem", "-16px"},
		{"0rem", "0px"},
		{"rem", ""},
		{"abcrem", ""},
		{"48REM", ""},
		{"48em", ""},
		{"50vw", ""},
		{"576460752303423487rem", "9223372036854775792px"},
		{"576460752303423488rem", ""}, // Would overflow
		{"-576460752303423489rem", ""},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeInPixels(tt.size))
		})
	}
}

func TestKebabCase(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"backgroundColor", "background-color"},
		{"zIndex", "z-index"},
		{"color", "color"},
		{"font-size", "font-size"},
		{"WebkitTransform", "-webkit-transform"},
		{"msTransform", "-ms-transform"},
		{"msx", "msx"},
		{"--customProp", "--customProp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kebabCase(tt.name))
		})
	}
}

func TestCSSString(t *testing.T) {
	assert.Equal(t, `"Screen: _"`, cssString("Screen: _"))
	assert.Equal(t, `"a\"b\\c"`, cssString(`a"b\c`))
	assert.Equal(t, `""`, cssString(""))
	assert.Equal(t, `"a\a b"`, cssString("a\nb"))
	assert.Equal(t, `"tab\9 "`, cssString("tab\t"))
}

func TestCSSUnquote(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{`"plain"`, "plain", true},
		{`"a\"b\\c"`, `a"b\c`, true},
		{`"a\a b"`, "a\nb", true},
		{`"\41\42 C"`, "ABC", true},
		{`""`, "", true},
		{`attr(data-x)`, "", false},
		{`"`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := cssUnquote(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, s := range []string{"Screen: <a\nb> (1px)", "x\x7fy\\", `"quoted"`} {
		got, ok := cssUnquote(cssString(s))
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
}
