// Package colorgen generates color utility CSS for utility-first frameworks.
//
// A handful of theme colors is expanded into a 50..950 shade palette and
// every shade becomes text, background, border, ring, divide, placeholder
// and gradient-stop utilities, at full opacity and at each opacity step
// from 5 to 100.
//
// # Generation
//
//	config := colorgen.Config{
//		Colors:  []string{"primary", "secondary"},
//		CSSPath: "src/style.css",
//		Theme: colorgen.Theme{Colors: map[string]string{
//			"primary":   "rgb(var(--color-primary) / <alpha-value>)",
//			"secondary": "#2A2A2C",
//		}},
//	}
//	result, err := colorgen.GenerateFile(config, "src/colors.css")
//
// Theme values may be hex, rgb() or a var(--name) reference; references are
// resolved by reading the custom property from CSSPath.
//
// # Linting
//
//	result, err := colorgen.Lint(config, colorgen.LintConfig{
//		ScanPaths: []string{"src/**/*.{vue,tsx}"},
//	})
//
// # CLI Tool
//
//	go install github.com/caiquecamargo/colorgen/cmd/colorgen@latest
package colorgen

import (
	cg "github.com/caiquecamargo/colorgen/internal/colorgen"
)

// Public types re-exported from the implementation package.
type (
	Config         = cg.Config
	Theme          = cg.Theme
	GenerateResult = cg.GenerateResult
	Utilities      = cg.Utilities
	Rule           = cg.Rule
	Declaration    = cg.Declaration
	Palette        = cg.Palette
	RGB            = cg.RGB
	ShadeDeriver   = cg.ShadeDeriver
	UtilitySink    = cg.UtilitySink
	LintConfig     = cg.LintConfig
	LintResult     = cg.LintResult
	Issue          = cg.Issue
	OutputFormat   = cg.OutputFormat
)

// Generation errors, matched with errors.Is.
var (
	ErrFileAccess    = cg.ErrFileAccess
	ErrInvalidColor  = cg.ErrInvalidColor
	ErrConfiguration = cg.ErrConfiguration
)

// Defaults shared with the CLI.
const (
	DefaultCSSPath = cg.DefaultCSSPath
	DefaultLayer   = cg.DefaultLayer
	DefaultFormat  = cg.DefaultFormat
)

// DefaultColors is the color list used when none is configured.
func DefaultColors() []string {
	return cg.DefaultColors()
}
