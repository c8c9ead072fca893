package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yacobolo/debugscreens"
	"github.com/yacobolo/debugscreens/internal/screens"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the breakpoint overlay CSS",
	Long: `Generate a ::before overlay rule whose text changes with min-width media
queries as the viewport crosses each breakpoint.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addScreenFlags(generateCmd)

	f := generateCmd.Flags()
	f.StringP("output", "o", "", "Output file (default: stdout)")
	f.String("format", "css", "Output format: css|json")
	f.Bool("production", false, "Production build: generate nothing")
	f.Bool("watch", false, "Regenerate when the config or theme files change")
}

// addScreenFlags registers the flags shared by generate and screens
func addScreenFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArray("screen", nil, "Breakpoint as name=size, repeatable and ordered (e.g. sm=40rem)")
	f.StringSlice("theme", nil, "Glob patterns for Tailwind v4 stylesheets with --breakpoint-* theme variables")
	f.StringArray("style", nil, "Style override as property=value, repeatable")
	f.StringSlice("ignore", nil, "Screen names to leave out (default: dark)")
	f.String("prefix", "", `Label prefix (default: "Screen: ")`)
	f.String("selector", "", "Selector the overlay attaches to (default: .debug-screens)")
	f.StringSlice("position", nil, "Corner as y,x (default: bottom,left)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	configPath := getStringWithFallback("config", "config", defaultConfigPath)

	cfg, err := buildGenerateConfig(cmd, configPath)
	if err != nil {
		return err
	}

	status := statusWriter(cfg)
	if cfg.Production {
		fmt.Fprintln(status, "Production build: debug screens disabled")
		return nil
	}

	if getBoolWithFallback("watch", "generate.watch", false) {
		return runWatch(cmd, configPath, cfg)
	}

	_, err = generateOnce(cfg, cmd.OutOrStdout(), status)
	return err
}

// statusWriter returns where progress and diagnostics go. Stdout may carry
// the generated CSS, so status always goes to stderr.
func statusWriter(cfg generateConfig) io.Writer {
	if cfg.Quiet {
		return io.Discard
	}
	return os.Stderr
}

// resolveScreens merges breakpoints from theme stylesheets, then the config
// file and --screen flags. Later sources override earlier ones by name.
func resolveScreens(cfg generateConfig, status io.Writer) (debugscreens.Screens, []string, error) {
	result := debugscreens.Screens{}
	var warnings []string

	if len(cfg.Themes) > 0 {
		var verbose io.Writer
		if cfg.Verbose {
			verbose = status
		}
		loaded, err := screens.LoadThemeFiles(cfg.Themes, verbose)
		if err != nil {
			return nil, nil, fmt.Errorf("loading theme files: %w", err)
		}
		if len(loaded.Files) == 0 {
			warnings = append(warnings, fmt.Sprintf("no theme files matched %v", cfg.Themes))
		}
		result = loaded.Screens
		warnings = append(warnings, loaded.Warnings...)
	}

	for _, s := range cfg.Screens {
		result.Set(s.Name, s.Size)
	}

	return result, warnings, nil
}

// generateOnce resolves screens, generates the overlay and writes it to the
// configured output (stdout when none).
func generateOnce(cfg generateConfig, stdout, status io.Writer) (*debugscreens.StyleTree, error) {
	reporter := screens.NewReporter(status, cfg.Color)

	screenSet, warnings, err := resolveScreens(cfg, status)
	if err != nil {
		return nil, err
	}
	if len(screenSet) == 0 {
		warnings = append(warnings, "no screens configured, only the base rule is generated")
	}

	tree := debugscreens.Generate(screenSet, cfg.Options)

	if err := writeTree(cfg, tree, stdout); err != nil {
		return nil, err
	}

	reporter.PrintWarnings(warnings)
	if cfg.Output != "" && cfg.Output != "-" {
		reporter.PrintSuccess("Generated %s (%d breakpoints)", cfg.Output, len(tree.Media))
	}
	if cfg.Verbose {
		reporter.PrintScreens(screens.BuildRows(screenSet, tree))
		reporter.PrintBaseLabel(tree.Label(""))
	}

	return tree, nil
}

func writeTree(cfg generateConfig, tree *debugscreens.StyleTree, stdout io.Writer) error {
	if cfg.Output == "" || cfg.Output == "-" {
		return debugscreens.WriteOutput(stdout, tree, cfg.Format)
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	// #nosec G304 - path comes from trusted configuration
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := debugscreens.WriteOutput(f, tree, cfg.Format); err != nil {
		f.Close()
		return fmt.Errorf("write failed: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	return nil
}
