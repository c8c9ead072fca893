package debugscreens

// Declaration is a single CSS property: value pair
type Declaration struct {
	Property string // "z-index"
	Value    string // "2147483647"
}

// Declarations is an ordered property list with last-wins assignment
type Declarations []Declaration

// Set assigns value to property. An existing property keeps its position.
func (d *Declarations) Set(property, value string) {
	for i := range *d {
		if (*d)[i].Property == property {
			(*d)[i].Value = value
			return
		}
	}
	*d = append(*d, Declaration{Property: property, Value: value})
}

// Get returns the value of property
func (d Declarations) Get(property string) (string, bool) {
	for _, decl := range d {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// MediaRule is a nested rule active under a media condition
type MediaRule struct {
	Query        string // "@media (min-width: 640px)"
	Declarations Declarations
}

// StyleTree is the generated overlay rule: base declarations for Selector
// followed by one media rule per breakpoint, in breakpoint order.
type StyleTree struct {
	Selector     string // ".debug-screens::before"
	Declarations Declarations
	Media        []MediaRule
}

// Get returns a base declaration value
func (t *StyleTree) Get(property string) (string, bool) {
	return t.Declarations.Get(property)
}

// MediaRule returns the rule for query
func (t *StyleTree) MediaRule(query string) (MediaRule, bool) {
	for _, m := range t.Media {
		if m.Query == query {
			return m, true
		}
	}
	return MediaRule{}, false
}

// Queries returns media query keys in order
func (t *StyleTree) Queries() []string {
	queries := make([]string, len(t.Media))
	for i, m := range t.Media {
		queries[i] = m.Query
	}
	return queries
}

// Label returns the unquoted overlay text for the base rule (query == "")
// or for the given media query.
func (t *StyleTree) Label(query string) string {
	var content string
	if query == "" {
		content, _ = t.Get("content")
	} else if m, ok := t.MediaRule(query); ok {
		content, _ = m.Declarations.Get("content")
	}
	if unquoted, ok := cssUnquote(content); ok {
		return unquoted
	}
	return content
}

// setMedia assigns a declaration in the media rule for query, creating the
// rule at the end when it does not exist yet.
func (t *StyleTree) setMedia(query, property, value string) {
	for i := range t.Media {
		if t.Media[i].Query == query {
			t.Media[i].Declarations.Set(property, value)
			return
		}
	}
	rule := MediaRule{Query: query}
	rule.Declarations.Set(property, value)
	t.Media = append(t.Media, rule)
}
