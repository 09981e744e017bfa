package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/caiquecamargo/colorgen"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate color utilities from theme colors",
	Long: `Resolve each theme color (hex, rgb() or var(--name) read from the
source stylesheet), expand it into shades 50..950 and write every
color utility at full opacity and at opacity steps 5..100.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringP("output", "o", "", "Output file (default: stdout)")
	f.String("format", "css", "Output format: css|json")
	f.String("layer", "utilities", "Wrap rules in @layer NAME (empty to disable)")
	f.StringSlice("content", nil, "Glob patterns of files whose class references filter the output")
	f.Bool("watch", false, "Regenerate when the source stylesheet or config changes")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if err := generateOnce(cmd); err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return watchAndRegenerate(ctx, cmd)
	}

	// Run lint after generate if --lint flag set
	if lint, _ := cmd.Flags().GetBool("lint"); lint {
		return runLint(cmd)
	}

	return nil
}

func generateOnce(cmd *cobra.Command) error {
	config := buildGenerateConfig()
	output := getStringWithFallback("output", "generate.output", "")

	var (
		result *colorgen.GenerateResult
		err    error
	)
	if output == "" || output == "-" {
		result, err = colorgen.Generate(config, cmd.OutOrStdout())
		output = "stdout"
	} else {
		result, err = colorgen.GenerateFile(config, output)
	}
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet && output != "stdout" {
		reporter := colorgen.NewReporter(os.Stdout, buildLintConfig(nil))
		reporter.PrintGenerateSummary(*result, output)
	}

	return nil
}

// watchAndRegenerate re-runs generation whenever the source stylesheet or
// the config file changes. Directories are watched rather than files so
// editors that save by rename keep triggering events.
func watchAndRegenerate(ctx context.Context, cmd *cobra.Command) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	targets := watchTargets(cmd)
	dirs := make(map[string]bool)
	for path := range targets {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	logger := buildGenerateConfig().Logger
	logger.Info("watching for changes", "files", len(targets))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			regenerate(cmd, logger, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "err", err)
		case <-ctx.Done():
			return nil
		}
	}
}

func regenerate(cmd *cobra.Command, logger *log.Logger, event fsnotify.Event) {
	logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

	// Start from a clean slate so removed keys do not linger
	k = koanf.New(".")
	if err := loadConfig(cmd); err != nil {
		logger.Error("reload config", "err", err)
		return
	}
	if err := generateOnce(cmd); err != nil {
		logger.Error("regenerate", "err", err)
	}
}

// watchTargets returns the cleaned paths whose changes trigger regeneration.
func watchTargets(cmd *cobra.Command) map[string]bool {
	return map[string]bool{
		filepath.Clean(getStringWithFallback("source", "generate.source", colorgen.DefaultCSSPath)): true,
		filepath.Clean(configPath(cmd)): true,
	}
}
