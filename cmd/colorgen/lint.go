package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caiquecamargo/colorgen"
	"github.com/spf13/cobra"
)

// errLintFailed signals a failing lint gate; the report is already printed.
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report references to color utilities that are not generated",
	Long: `Scan content files for classes that look like generated color utilities
(<kind>-<color>-<shade>[/<opacity>]) and report unknown shades and
unsupported opacity steps.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", nil, "File patterns to scan (default: generate.content)")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (colorlint) suffix on issues")
}

// runLint is shared between `colorgen lint` and `colorgen generate --lint`.
func runLint(cmd *cobra.Command) error {
	genConfig := buildGenerateConfig()
	lintConfig := buildLintConfig(genConfig.Content)
	if len(lintConfig.ScanPaths) == 0 {
		return fmt.Errorf("nothing to lint: set --paths, lint.paths or generate.content")
	}

	result, err := colorgen.Lint(genConfig, lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := colorgen.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := colorgen.WriteOutput(cmd.OutOrStdout(), result, format, lintConfig); err != nil {
			return err
		}
		if format == colorgen.OutputIssues && getBoolWithFallback("verbose", "verbose", false) {
			verbose := colorgen.NewVerboseReporter(cmd.OutOrStdout(), colorgen.ShouldUseColors(lintConfig.UseColors))
			verbose.PrintStatistics(*result)
			verbose.PrintWarnings(*result)
		}
	}

	// Exit code logic - "Soft Gate" approach
	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			return errLintFailed
		}
	} else if result.ErrorCount > 0 {
		// Default mode: only errors fail the build
		if !quiet {
			fmt.Fprintf(os.Stderr, "\n%d color utility errors\n", result.ErrorCount)
		}
		return errLintFailed
	}

	return nil
}
