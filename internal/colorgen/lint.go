package colorgen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string // Patterns to scan (default: the generation content globs)
	Strict    bool     // Exit with code 1 if issues found

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (colorlint) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintResult contains linting analysis results
type LintResult struct {
	Issues         []Issue
	FilesScanned   int
	FilesSkipped   int
	UtilityRefs    int // Valid references to generated color utilities
	ErrorCount     int // Issues with error severity
	TruncatedCount int // Issues removed due to limits
	Warnings       []string

	// Statistics for verbose output
	KnownUtilities    int            // Utilities generated for the configured colors
	DistinctUtilities int            // Distinct generated utilities referenced
	RefsByColor       map[string]int // Valid references per color name
	RefsByKind        map[string]int // Valid references per class prefix
}

// Coverage returns the share of generated utilities referenced at least once.
func (r LintResult) Coverage() float64 {
	if r.KnownUtilities == 0 {
		return 0
	}
	return float64(r.DistinctUtilities) / float64(r.KnownUtilities) * 100
}

// Lint generates the configured utilities and reports every class in the
// scanned files that looks like one of them but is not generated.
func Lint(gen Config, config LintConfig) (*LintResult, error) {
	// Lint against the full set, never a content-filtered one
	gen.Content = nil
	generated, err := Generate(gen)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	tokens, stats, err := ScanContent(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	known := make(map[string]bool, generated.Utilities.Len())
	for _, r := range generated.Utilities.Rules() {
		known[r.ClassName] = true
	}

	result := &LintResult{
		FilesScanned:   stats.FilesScanned,
		FilesSkipped:   stats.FilesSkipped,
		Warnings:       generated.Warnings,
		KnownUtilities: len(known),
		RefsByColor:    make(map[string]int),
		RefsByKind:     make(map[string]int),
	}
	seen := make(map[string]bool)

	matcher := newUtilityMatcher(gen.colors())
	for _, tok := range tokens {
		ref, ok := matcher.match(tok.Name)
		if !ok {
			continue
		}
		if known[tok.Name] {
			result.UtilityRefs++
			result.RefsByColor[ref.color]++
			result.RefsByKind[ref.kind.Prefix()]++
			if !seen[tok.Name] {
				seen[tok.Name] = true
				result.DistinctUtilities++
			}
			continue
		}
		text, severity := ref.problem()
		issue := newIssue(tok, text, severity)
		if severity == SeverityError {
			result.ErrorCount++
		}
		result.Issues = append(result.Issues, issue)
	}

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

func newIssue(tok ClassToken, text, severity string) Issue {
	return Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{tok.LineText},
		Pos: IssuePos{
			Filename: tok.File,
			Line:     tok.Line,
			Column:   tok.Column,
		},
	}
}

// utilityRef is a class name split into its color utility parts
type utilityRef struct {
	class   string
	kind    Kind
	color   string
	shade   string
	opacity string // "" when no modifier is present
}

// problem describes why a matched class is not generated. Bad shades and
// opacities are errors; anything else is a warning.
func (r utilityRef) problem() (string, string) {
	if !isShadeLabel(r.shade) {
		return fmt.Sprintf(IssueUnknownShade, r.class, r.shade, strings.Join(ShadeLabels(), ", ")), SeverityError
	}
	if r.opacity != "" && !isOpacityStep(r.opacity) {
		return fmt.Sprintf(IssueBadOpacity, r.class, r.opacity), SeverityError
	}
	return fmt.Sprintf(IssueNotGenerated, r.class), SeverityWarning
}

// utilityMatcher recognizes "<kind>-<color>-<shade>[/<opacity>]" class names
type utilityMatcher struct {
	prefixes map[string]Kind
	colors   []string // longest first so "primary-dark" wins over "primary"
}

func newUtilityMatcher(colors []string) *utilityMatcher {
	m := &utilityMatcher{prefixes: make(map[string]Kind, len(Kinds))}
	for _, k := range Kinds {
		m.prefixes[k.Prefix()] = k
	}

	m.colors = append([]string(nil), colors...)
	sort.SliceStable(m.colors, func(i, j int) bool {
		return len(m.colors[i]) > len(m.colors[j])
	})
	return m
}

func (m *utilityMatcher) match(class string) (utilityRef, bool) {
	dash := strings.IndexByte(class, '-')
	if dash < 0 {
		return utilityRef{}, false
	}
	kind, ok := m.prefixes[class[:dash]]
	if !ok {
		return utilityRef{}, false
	}
	rest := class[dash+1:]

	for _, color := range m.colors {
		if !strings.HasPrefix(rest, color+"-") {
			continue
		}
		tail := rest[len(color)+1:]
		if tail == "" {
			return utilityRef{}, false
		}

		ref := utilityRef{class: class, kind: kind, color: color, shade: tail}
		if i := strings.IndexByte(tail, '/'); i >= 0 {
			ref.shade, ref.opacity = tail[:i], tail[i+1:]
		}
		return ref, true
	}
	return utilityRef{}, false
}

func isShadeLabel(s string) bool {
	for _, label := range ShadeLabels() {
		if s == label {
			return true
		}
	}
	return false
}

func isOpacityStep(s string) bool {
	v, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	for _, step := range OpacitySteps() {
		if v == step {
			return true
		}
	}
	return false
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
