package colorgen

import (
	"io"

	"github.com/charmbracelet/log"
)

// ColorSpec is a requested color name and its raw theme expression.
type ColorSpec struct {
	Name string // "primary"
	Raw  string // "rgb(var(--color-primary) / <alpha-value>)"
}

// Theme holds the color table supplied by the host framework's theme.
type Theme struct {
	Colors map[string]string // name -> CSS color expression
}

// Config holds generator configuration
type Config struct {
	Colors  []string // Color names to expand (default: ["primary"])
	CSSPath string   // Stylesheet used to resolve var(--*) colors (default: "src/style.css")
	Theme   Theme

	Content []string // Glob patterns for files whose class references filter output
	Layer   string   // Wrap emitted CSS in @layer <name>; empty disables
	Format  string   // Output format: "css", "json" (default: "css")

	Deriver ShadeDeriver // Shade algorithm (default: LinearDeriver)
	Logger  *log.Logger  // Nil discards log output
}

// ColorPalette is the expanded palette of one requested color.
type ColorPalette struct {
	Name      string
	Canonical string // "134, 25, 143"
	Palette   Palette
}

// GenerateResult contains generation stats
type GenerateResult struct {
	Utilities       *Utilities
	Palettes        []ColorPalette
	ColorsExpanded  int
	RulesGenerated  int // Rules produced before content filtering
	RulesEmitted    int // Rules left after content filtering
	ContentScanned  int // Content files scanned
	DegenerateNames []string
	Warnings        []string
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only issues in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// Default values shared by the library and the CLI.
const (
	DefaultCSSPath = "src/style.css"
	DefaultLayer   = "utilities"
	DefaultFormat  = "css"
)

// DefaultColors is the color list used when none is configured.
func DefaultColors() []string {
	return []string{"primary"}
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.New(io.Discard)
}

func (c Config) deriver() ShadeDeriver {
	if c.Deriver != nil {
		return c.Deriver
	}
	return LinearDeriver{}
}

func (c Config) cssPath() string {
	if c.CSSPath == "" {
		return DefaultCSSPath
	}
	return c.CSSPath
}

func (c Config) colors() []string {
	if len(c.Colors) == 0 {
		return DefaultColors()
	}
	return c.Colors
}
