package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/caiquecamargo/colorgen"
	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var k = koanf.New(".")

// configPath returns the config file chosen with --config.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = ".colorgen.yaml"
	}
	return path
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	if err := loadConfigFromPath(configPath(cmd)); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set;
	// defaults come from the *WithFallback getters)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (COLORGEN_* prefix)
	if err := k.Load(env.Provider("COLORGEN_", ".", func(s string) string {
		// COLORGEN_GENERATE_SOURCE -> generate.source
		// COLORGEN_THEME_COLORS_PRIMARY -> theme.colors.primary
		// COLORGEN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "COLORGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() colorgen.Config {
	return colorgen.Config{
		Colors:  getStringsWithFallback("colors", "generate.colors", colorgen.DefaultColors()),
		CSSPath: getStringWithFallback("source", "generate.source", colorgen.DefaultCSSPath),
		Theme:   colorgen.Theme{Colors: k.StringMap("theme.colors")},
		Content: getStringsWithFallback("content", "generate.content", nil),
		Layer:   getStringAllowEmpty("layer", "generate.layer", colorgen.DefaultLayer),
		Format:  getStringWithFallback("format", "generate.format", colorgen.DefaultFormat),
		Logger: newLogger(
			getBoolWithFallback("verbose", "verbose", false),
			getBoolWithFallback("quiet", "quiet", false),
		),
	}
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
// Scan paths fall back to the generation content globs.
func buildLintConfig(content []string) colorgen.LintConfig {
	return colorgen.LintConfig{
		ScanPaths:          getStringsWithFallback("paths", "lint.paths", content),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// newLogger returns the stderr logger used by the generator.
func newLogger(verbose, quiet bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "colorgen"})
	switch {
	case quiet:
		logger.SetLevel(log.ErrorLevel)
	case verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringAllowEmpty is like getStringWithFallback but an explicitly empty
// value is kept (e.g. `layer: ""` disables layer wrapping).
func getStringAllowEmpty(flagKey, configKey, defaultVal string) string {
	if k.Exists(flagKey) {
		return k.String(flagKey)
	}
	if k.Exists(configKey) {
		return k.String(configKey)
	}
	return defaultVal
}

// getStringsWithFallback reads a list from the flag key, then the config key.
// A plain string (as set through env vars) is split on commas.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	for _, key := range []string{flagKey, configKey} {
		if s, ok := k.Get(key).(string); ok {
			if v := splitList(s); len(v) > 0 {
				return v
			}
			continue
		}
		if v := k.Strings(key); len(v) > 0 {
			return v
		}
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// splitList splits comma-separated values into a slice
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
