package debugscreens

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Default option values, as read from the host theme when absent.
const (
	DefaultPrefix   = "Screen: "
	DefaultSelector = ".debug-screens"
	DefaultY        = "bottom"
	DefaultX        = "left"
)

// DefaultIgnore lists the screens skipped when no ignore list is configured.
// "dark" is the legacy non-width dark mode screen.
var DefaultIgnore = []string{"dark"}

// Screen is a single named breakpoint
type Screen struct {
	Name string // "sm"
	Size string // "640px", "40rem"; empty when the source value was not a string
}

// Screens is an ordered breakpoint set. Order is the order of the source
// mapping and decides which screen labels the base rule.
type Screens []Screen

// Set adds or replaces a screen. A duplicate name keeps its original position
// and takes the new size (last wins).
func (s *Screens) Set(name, size string) {
	for i := range *s {
		if (*s)[i].Name == name {
			(*s)[i].Size = size
			return
		}
	}
	*s = append(*s, Screen{Name: name, Size: size})
}

// Get returns the size for name
func (s Screens) Get(name string) (string, bool) {
	for _, screen := range s {
		if screen.Name == name {
			return screen.Size, true
		}
	}
	return "", false
}

// Delete removes the screen called name, if present
func (s *Screens) Delete(name string) {
	out := (*s)[:0]
	for _, screen := range *s {
		if screen.Name != name {
			out = append(out, screen)
		}
	}
	*s = out
}

// Names returns screen names in order
func (s Screens) Names() []string {
	names := make([]string, len(s))
	for i, screen := range s {
		names[i] = screen.Name
	}
	return names
}

// UnmarshalYAML decodes a YAML mapping while keeping document order.
// Values that are not strings (e.g. {raw: "(prefers-color-scheme: dark)"},
// bare numbers, null) decode to an empty size so the screen is kept but
// never emitted as a media query.
func (s *Screens) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("screens: expected a mapping, got %s", kindName(node.Kind))
	}

	out := Screens{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		size := ""
		if val.Kind == yaml.ScalarNode && val.ShortTag() == "!!str" {
			size = val.Value
		}
		out.Set(key.Value, size)
	}
	*s = out
	return nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "mapping"
	}
}

// Position anchors the overlay to a corner of the viewport
type Position struct {
	Y string // "top" | "bottom"
	X string // "left" | "right"
}

// Options holds the presentation options for the overlay.
// The zero value is valid; Resolve fills in the defaults.
type Options struct {
	Style    map[string]string // User overrides, applied last (default: none)
	Ignore   []string          // Screen names to leave out (default: ["dark"])
	Prefix   *string           // Label prefix (default: "Screen: "); nil means unset
	Selector string            // Element the overlay attaches to (default: ".debug-screens")
	Position Position          // Corner (default: bottom, left)
}

// Resolve returns a copy of o with every unset field replaced by its default.
// Each position component falls back on its own.
func (o Options) Resolve() Options {
	r := o

	if r.Style == nil {
		r.Style = map[string]string{}
	}
	if r.Ignore == nil {
		r.Ignore = append([]string(nil), DefaultIgnore...)
	}
	if r.Prefix == nil {
		p := DefaultPrefix
		r.Prefix = &p
	}
	if r.Selector == "" {
		r.Selector = DefaultSelector
	}
	if r.Position.Y == "" {
		r.Position.Y = DefaultY
	}
	if r.Position.X == "" {
		r.Position.X = DefaultX
	}

	return r
}

// StringPtr returns a pointer to s, for setting Options.Prefix inline
func StringPtr(s string) *string {
	return &s
}
