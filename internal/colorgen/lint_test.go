package colorgen

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lintMarkup = `<p class="text-primary-500 bg-primary-550 ring-primary-500/7 border-primary-500/05 bg-primary-500/50 p-4 text-accent-500">`

func TestLint(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(page, []byte(lintMarkup+"\n"), 0644))

	result, err := Lint(
		Config{Theme: Theme{Colors: map[string]string{"primary": "#86198f"}}},
		LintConfig{ScanPaths: []string{filepath.Join(dir, "*.html")}},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 2, result.UtilityRefs)
	assert.Equal(t, 2, result.ErrorCount)
	require.Len(t, result.Issues, 3)

	tests := []struct {
		col      int
		severity string
		text     string
	}{
		{28, SeverityError, fmt.Sprintf(IssueUnknownShade, "bg-primary-550", "550",
			"50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950")},
		{43, SeverityError, fmt.Sprintf(IssueBadOpacity, "ring-primary-500/7", "7")},
		{62, SeverityWarning, fmt.Sprintf(IssueNotGenerated, "border-primary-500/05")},
	}

	for i, tt := range tests {
		issue := result.Issues[i]
		assert.Equal(t, LinterName, issue.FromLinter)
		assert.Equal(t, page, issue.Pos.Filename)
		assert.Equal(t, 1, issue.Pos.Line)
		assert.Equal(t, tt.col, issue.Pos.Column)
		assert.Equal(t, tt.severity, issue.Severity)
		assert.Equal(t, tt.text, issue.Text)
		assert.Equal(t, []string{lintMarkup}, issue.SourceLines)
	}
}

func TestLint_IgnoresContentFilter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte(`<i class="bg-primary-900">`), 0644))

	// Content lists no file using bg-primary-900, yet the class is known
	result, err := Lint(
		Config{
			Theme:   Theme{Colors: map[string]string{"primary": "#86198f"}},
			Content: []string{filepath.Join(dir, "*.none")},
		},
		LintConfig{ScanPaths: []string{filepath.Join(dir, "*.html")}},
	)
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 1, result.UtilityRefs)
}

func TestLint_ConfigurationError(t *testing.T) {
	_, err := Lint(Config{}, LintConfig{})
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestUtilityMatcher(t *testing.T) {
	m := newUtilityMatcher([]string{"primary", "primary-dark"})

	tests := []struct {
		class     string
		wantOK    bool
		wantColor string
		wantShade string
		wantOp    string
	}{
		{"bg-primary-500", true, "primary", "500", ""},
		{"bg-primary-dark-500", true, "primary-dark", "500", ""},
		{"text-primary-dark-50/25", true, "primary-dark", "50", "25"},
		{"divide-primary-9000", true, "primary", "9000", ""},
		{"bg-accent-500", false, "", "", ""},
		{"bg-primary-", false, "", "", ""},
		{"p-4", false, "", "", ""},
		{"primary", false, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			ref, ok := m.match(tt.class)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantColor, ref.color)
			assert.Equal(t, tt.wantShade, ref.shade)
			assert.Equal(t, tt.wantOp, ref.opacity)
		})
	}
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "c"},
	}

	t.Run("max per linter", func(t *testing.T) {
		got, truncated := limitIssues(issues, LintConfig{MaxIssuesPerLinter: 2})
		assert.Len(t, got, 2)
		assert.Equal(t, 3, truncated)
	})

	t.Run("max same issues", func(t *testing.T) {
		got, truncated := limitIssues(issues, LintConfig{MaxSameIssues: 1})
		require.Len(t, got, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Text, got[1].Text, got[2].Text})
		assert.Equal(t, 2, truncated)
	})
}

func TestLint_Statistics(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"),
		[]byte("<i class=\"bg-primary-900 bg-primary-900 text-accent-50/10\">\n"), 0644))

	result, err := Lint(
		Config{
			Colors: []string{"primary", "accent"},
			Theme:  Theme{Colors: map[string]string{"primary": "#86198f", "accent": "#f43f5e"}},
		},
		LintConfig{ScanPaths: []string{filepath.Join(dir, "*.html")}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2*2079, result.KnownUtilities)
	assert.Equal(t, 3, result.UtilityRefs)
	assert.Equal(t, 2, result.DistinctUtilities)
	assert.Equal(t, map[string]int{"primary": 2, "accent": 1}, result.RefsByColor)
	assert.Equal(t, map[string]int{"bg": 2, "text": 1}, result.RefsByKind)
	assert.InDelta(t, 2.0/4158*100, result.Coverage(), 0.0001)
}
