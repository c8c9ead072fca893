package debugscreens

import (
	"bufio"
	"io"
)

// OutputFormat is the serialisation used for a generated tree
type OutputFormat string

const (
	// OutputCSS writes plain CSS text (default)
	OutputCSS OutputFormat = "css"
	// OutputJSON writes the tree as a host component object
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat maps a format flag to an OutputFormat.
// Unknown values fall back to the default.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "css":
		return OutputCSS
	case "json":
		return OutputJSON
	default:
		return OutputCSS
	}
}

// WriteOutput writes tree in the given format
func WriteOutput(w io.Writer, tree *StyleTree, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, tree)
	default:
		return WriteCSS(w, tree)
	}
}

// WriteCSS writes tree as CSS text: the base rule first, then every media
// rule in breakpoint order so later breakpoints win in the cascade.
func WriteCSS(w io.Writer, tree *StyleTree) error {
	bw := bufio.NewWriter(w)

	writeRule(bw, "", tree.Selector, tree.Declarations)
	for _, m := range tree.Media {
		bw.WriteString("\n")
		bw.WriteString(m.Query)
		bw.WriteString(" {\n")
		writeRule(bw, "  ", tree.Selector, m.Declarations)
		bw.WriteString("}\n")
	}

	return bw.Flush()
}

func writeRule(bw *bufio.Writer, indent, selector string, decls Declarations) {
	bw.WriteString(indent + selector + " {\n")
	for _, d := range decls {
		bw.WriteString(indent + "  " + d.Property + ": " + d.Value + ";\n")
	}
	bw.WriteString(indent + "}\n")
}
