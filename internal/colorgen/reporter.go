package colorgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter handles formatting and outputting results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(config.UseColors),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up in the terminal.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result LintResult) {
	total := len(result.Issues)

	fmt.Fprintln(r.w, "")
	if result.TruncatedCount > 0 {
		fmt.Fprintf(r.w, "%s (%s truncated):\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(total, "issue", "issues"))
	}

	if total > 0 {
		fmt.Fprintf(r.w, "* %s: %d\n", LinterName, total)
	}
	if result.ErrorCount > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleRed,
			pluralizeCount(result.ErrorCount, "error", "errors"), r.useColors))
	}
	fmt.Fprintf(r.w, "%s in %s\n",
		pluralizeCount(result.UtilityRefs, "valid color utility reference", "valid color utility references"),
		pluralizeCount(result.FilesScanned, "file", "files"))
}

// PrintGenerateSummary outputs what a generation run produced
func (r *Reporter) PrintGenerateSummary(result GenerateResult, target string) {
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "✓ Generated", r.useColors), target)
	fmt.Fprintf(r.w, "  Colors expanded: %d\n", result.ColorsExpanded)
	fmt.Fprintf(r.w, "  Rules generated: %d\n", result.RulesGenerated)
	if result.ContentScanned > 0 || result.RulesEmitted != result.RulesGenerated {
		fmt.Fprintf(r.w, "  Rules emitted:   %d (%s scanned)\n",
			result.RulesEmitted, pluralizeCount(result.ContentScanned, "content file", "content files"))
	}

	for _, cp := range result.Palettes {
		fmt.Fprintf(r.w, "  %s ", RenderStyle(StyleCyan, cp.Name, r.useColors))
		for _, s := range cp.Palette {
			if s.Valid {
				fmt.Fprint(r.w, Swatch(s.Color, r.useColors))
			}
		}
		fmt.Fprintf(r.w, " %s\n", RenderStyle(StyleGray, cp.Canonical, r.useColors))
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, "⚠ Warnings:", r.useColors))
		for _, w := range result.Warnings {
			fmt.Fprintf(r.w, "  - %s\n", w)
		}
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
