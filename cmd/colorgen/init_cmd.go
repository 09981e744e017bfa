package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .colorgen.yaml config file",
	Long:  `Create a .colorgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".colorgen.yaml"); err == nil && !force {
			return fmt.Errorf(".colorgen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".colorgen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .colorgen.yaml")
		return nil
	},
}

const defaultConfig = `# colorgen configuration

# Shared settings
verbose: false

# Theme colors: hex, rgb() or var(--name) resolved from generate.source
theme:
  colors:
    primary: "rgb(var(--color-primary) / <alpha-value>)"
    accent: "#f43f5e"

# Generation settings
generate:
  colors:
    - primary
  source: src/style.css
  output: src/colors.css   # "-" or empty writes to stdout
  format: css              # css | json
  layer: utilities         # "" disables @layer wrapping
  content: []              # e.g. "src/**/*.vue"; empty emits every utility

# Linting settings
lint:
  paths: []                # defaults to generate.content
  strict: false
  output-format: issues    # issues | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
