package colorgen

import (
	"io"

	cg "github.com/caiquecamargo/colorgen/internal/colorgen"
)

// Lint output formats
const (
	OutputIssues = cg.OutputIssues
	OutputJSON   = cg.OutputJSON
)

// DetermineOutputFormat selects the lint output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	return cg.DetermineOutputFormat(formatFlag, quiet)
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	return cg.WriteOutput(w, result, format, config)
}

// Reporter prints lint issues and generation summaries.
type Reporter = cg.Reporter

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return cg.NewReporter(w, config)
}

// VerboseReporter prints lint usage statistics.
type VerboseReporter = cg.VerboseReporter

// NewVerboseReporter creates a statistics reporter writing to w
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return cg.NewVerboseReporter(w, useColors)
}

// ShouldUseColors reports whether terminal output should be colored
func ShouldUseColors(force bool) bool {
	return cg.ShouldUseColors(force)
}
