package debugscreens

import (
	"sort"
	"strings"
)

// Generate builds the overlay rule for screens. It never fails: screens with
// an empty size are skipped and unknown units simply get no pixel annotation.
// Identical inputs always produce identical trees.
func Generate(screens Screens, opts Options) *StyleTree {
	opts = opts.Resolve()
	prefix := *opts.Prefix

	// 1. Drop ignored screens
	visible := filterIgnored(screens, opts.Ignore)

	// 2. Base rule: the "below every breakpoint" state
	tree := &StyleTree{
		Selector:     opts.Selector + "::before",
		Declarations: baseDeclarations(prefix, opts.Position, visible),
	}

	// 3. One media rule per breakpoint
	for _, screen := range visible {
		if screen.Size == "" {
			continue
		}
		tree.setMedia(MediaQuery(screen.Size), "content", cssString(screenLabel(prefix, screen)))
	}

	// 4. User overrides win on any collision
	applyStyle(tree, opts.Style)

	return tree
}

// MediaQuery returns the media query key for a breakpoint size
func MediaQuery(size string) string {
	return "@media (min-width: " + size + ")"
}

// baseDeclarations returns the default overlay look, labelled after the
// first screen.
func baseDeclarations(prefix string, pos Position, screens Screens) Declarations {
	var d Declarations

	d.Set("content", cssString(baseLabel(prefix, screens)))
	d.Set("position", "fixed")
	d.Set("z-index", "2147483647")
	d.Set(pos.Y, "6px")
	d.Set(pos.X, "4px")
	d.Set("padding", "0.75rem 0.25rem")
	d.Set("line-height", "1")
	d.Set("font-size", "12px")
	d.Set("font-family", "sans-serif")
	d.Set("border-radius", "5px")
	d.Set("border", "2px solid #6f84f9ff")
	d.Set("background-color", "#162ba35f")
	d.Set("color", "#2e3982ff")
	d.Set("box-shadow", "0 0 2px 2px #7c75fd3d")

	return d
}

// baseLabel renders "<prefix>less than <sm> (640px)"
func baseLabel(prefix string, screens Screens) string {
	if len(screens) == 0 {
		return prefix + "_"
	}
	first := screens[0]
	return prefix + "less than <" + first.Name + "> (" + annotate(first.Size) + ")"
}

// screenLabel renders "<prefix><md> (768px:48rem)"
func screenLabel(prefix string, screen Screen) string {
	return prefix + "<" + screen.Name + "> (" + annotate(screen.Size) + ")"
}

// annotate prefixes size with its pixel equivalent when there is one
func annotate(size string) string {
	if px := SizeInPixels(size); px != "" {
		return px + ":" + size
	}
	return size
}

func filterIgnored(screens Screens, ignore []string) Screens {
	if len(ignore) == 0 {
		return screens
	}

	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}

	out := make(Screens, 0, len(screens))
	for _, screen := range screens {
		if !skip[screen.Name] {
			out = append(out, screen)
		}
	}
	return out
}

// applyStyle merges user overrides into the tree. Keys are applied in sorted
// order and normalised to kebab-case so "backgroundColor" replaces
// "background-color". An "@media ..." key replaces that rule's content.
func applyStyle(tree *StyleTree, style map[string]string) {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.HasPrefix(k, "@media") {
			tree.setMedia(k, "content", style[k])
			continue
		}
		tree.Declarations.Set(kebabCase(k), style[k])
	}
}
