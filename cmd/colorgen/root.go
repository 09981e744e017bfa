package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "colorgen",
	Short: "Color utility generator for utility-first CSS",
	Long: `Expand theme colors into a 50..950 shade palette and generate
text, bg, border, ring, divide, placeholder and gradient utilities
at full opacity and every opacity step from 5 to 100.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".colorgen.yaml", "Config file path")
	rootCmd.PersistentFlags().StringSlice("colors", nil, "Theme colors to expand (default: primary)")
	rootCmd.PersistentFlags().String("source", "src/style.css", "Stylesheet used to resolve var(--*) colors")
	_ = rootCmd.RegisterFlagCompletionFunc("colors", completeThemeColors)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
