package screens

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Reporter prints breakpoint tables and diagnostics
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, forceColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(w, forceColors),
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(w io.Writer, force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// NO_COLOR (https://no-color.org) disables colors
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if f, ok := w.(*os.File); ok {
		if fileInfo, err := f.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
			return true
		}
	}

	return false
}

// PrintScreens outputs the breakpoint table
func (r *Reporter) PrintScreens(rows []Row) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Screens", r.useColors))
	fmt.Fprintln(r.w, "-------")

	if len(rows) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "(none)", r.useColors))
		return
	}

	nameWidth, sizeWidth, pxWidth := len("NAME"), len("SIZE"), len("PX")
	for _, row := range rows {
		nameWidth = max(nameWidth, len(row.Name))
		sizeWidth = max(sizeWidth, len(row.Size))
		pxWidth = max(pxWidth, len(row.Pixels))
	}

	fmt.Fprintf(r.w, "%-*s  %-*s  %-*s  %s\n", nameWidth, "NAME", sizeWidth, "SIZE", pxWidth, "PX", "LABEL")
	for _, row := range rows {
		name := fmt.Sprintf("%-*s", nameWidth, row.Name)
		line := fmt.Sprintf("%s  %-*s  %-*s  ", RenderStyle(StyleCyan, name, r.useColors),
			sizeWidth, row.Size, pxWidth, row.Pixels)

		if row.Query == "" {
			fmt.Fprintln(r.w, line+RenderStyle(StyleGray, "(skipped)", r.useColors))
			continue
		}
		fmt.Fprintln(r.w, line+row.Label)
	}
}

// PrintBaseLabel outputs the label shown below the smallest breakpoint
func (r *Reporter) PrintBaseLabel(label string) {
	fmt.Fprintf(r.w, "\nBelow all breakpoints: %s\n", label)
}

// PrintWarnings shows loader and generator warnings
func (r *Reporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// PrintSuccess outputs a one-line confirmation
func (r *Reporter) PrintSuccess(format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "✓", r.useColors)+" "+msg)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
