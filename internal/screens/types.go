package screens

import "github.com/yacobolo/debugscreens"

// ScanStats tracks theme file discovery
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually read (after filtering)
	FilesSkipped    int // Files skipped because they are gitignored
}

// LoadResult contains the breakpoints read from theme files
type LoadResult struct {
	Screens  debugscreens.Screens
	Files    []string // Files that were parsed, in order
	Stats    ScanStats
	Warnings []string
}

// Row is one line of the breakpoint table
type Row struct {
	Name   string // "md"
	Size   string // "48rem"
	Pixels string // "768px", empty for non-rem sizes
	Query  string // "@media (min-width: 48rem)", empty when the screen is skipped
	Label  string // Overlay text shown above this breakpoint
}

// BuildRows pairs each screen with what the overlay does for it
func BuildRows(screens debugscreens.Screens, tree *debugscreens.StyleTree) []Row {
	rows := make([]Row, 0, len(screens))
	for _, s := range screens {
		row := Row{
			Name:   s.Name,
			Size:   s.Size,
			Pixels: debugscreens.SizeInPixels(s.Size),
		}
		if s.Size != "" {
			query := debugscreens.MediaQuery(s.Size)
			if _, ok := tree.MediaRule(query); ok {
				row.Query = query
				row.Label = tree.Label(query)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
