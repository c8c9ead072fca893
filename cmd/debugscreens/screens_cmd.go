package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/debugscreens"
	"github.com/yacobolo/debugscreens/internal/screens"
)

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "Show the resolved breakpoints and their overlay labels",
	Long: `Resolve breakpoints from theme stylesheets, the config file and flags,
and print what the overlay shows at each of them.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		configPath := getStringWithFallback("config", "config", defaultConfigPath)

		cfg, err := buildGenerateConfig(cmd, configPath)
		if err != nil {
			return err
		}

		reporter := screens.NewReporter(cmd.OutOrStdout(), cfg.Color)

		screenSet, warnings, err := resolveScreens(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		tree := debugscreens.Generate(screenSet, cfg.Options)
		reporter.PrintScreens(screens.BuildRows(screenSet, tree))
		reporter.PrintBaseLabel(tree.Label(""))
		reporter.PrintWarnings(warnings)
		return nil
	},
}

func init() {
	addScreenFlags(screensCmd)
}
