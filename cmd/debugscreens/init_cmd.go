package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .debugscreens.yaml config file",
	Long:  `Create a .debugscreens.yaml configuration file in the current directory with Tailwind's default breakpoints.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# debugscreens configuration
# Docs: https://github.com/yacobolo/debugscreens

verbose: false

# Breakpoints, smallest first. Order decides the "less than" label.
screens:
  sm: 40rem
  md: 48rem
  lg: 64rem
  xl: 80rem
  2xl: 96rem

# Overlay options
debugScreens:
  prefix: "Screen: "
  selector: .debug-screens
  position: [bottom, left]   # [top|bottom, left|right]
  ignore: [dark]
  style: {}                  # e.g. {color: "#fff", backgroundColor: "#000"}

# Generation settings
generate:
  output: ""                 # empty = stdout
  format: css                # css | json
  themes: []                 # Tailwind v4 stylesheets, e.g. ["src/**/*.css"]
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
