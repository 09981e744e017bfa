package colorgen

import (
	"fmt"
)

// Generate resolves, normalizes and expands every configured color and
// returns the merged utilities. Nothing is written: a failing color aborts
// the run before any sink sees partial output.
func Generate(config Config) (*GenerateResult, error) {
	logger := config.logger()
	result := &GenerateResult{}

	// 1. Resolve theme entries (no file I/O yet)
	specs, missing, err := resolveSpecs(config.Theme, config.colors())
	if err != nil {
		return nil, fmt.Errorf("resolve theme: %w", err)
	}
	for _, name := range missing {
		msg := fmt.Sprintf("color %q is not defined in the theme", name)
		result.Warnings = append(result.Warnings, msg)
		logger.Warn(msg)
	}

	// 2. Normalize, expand and build per color
	all := NewUtilities()
	for _, spec := range specs {
		canonical, err := NormalizeColor(spec.Raw, config.cssPath())
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", spec.Name, err)
		}

		palette := ExpandShades(canonical, config.deriver())
		if palette.Degenerate() {
			result.DegenerateNames = append(result.DegenerateNames, spec.Name)
			msg := fmt.Sprintf("color %q resolved to %q, which is not a usable color", spec.Name, canonical)
			result.Warnings = append(result.Warnings, msg)
			logger.Warn(msg)
		}

		result.Palettes = append(result.Palettes, ColorPalette{
			Name:      spec.Name,
			Canonical: canonical,
			Palette:   palette,
		})

		utilities := BuildUtilities(spec.Name, palette)
		all.Merge(utilities)
		result.ColorsExpanded++

		logger.Debug("expanded color",
			"name", spec.Name,
			"raw", spec.Raw,
			"canonical", canonical,
			"shades", len(palette),
			"rules", utilities.Len())
	}
	result.RulesGenerated = all.Len()

	// 3. Keep only referenced classes when content globs are configured
	if len(config.Content) > 0 {
		tokens, stats, err := ScanContent(config.Content)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		result.ContentScanned = stats.FilesScanned
		if stats.FilesFailed > 0 {
			msg := fmt.Sprintf("%d content files could not be read", stats.FilesFailed)
			result.Warnings = append(result.Warnings, msg)
			logger.Warn(msg)
		}

		used := UsedClasses(tokens)
		all = all.Filter(func(r Rule) bool {
			return used[r.ClassName]
		})

		logger.Debug("filtered by content",
			"files", stats.FilesScanned,
			"skipped", stats.FilesSkipped,
			"kept", all.Len())
	}

	result.Utilities = all
	result.RulesEmitted = all.Len()
	return result, nil
}
