package colorgen

import (
	"fmt"
	"io"
	"sort"
)

// VerboseReporter prints usage statistics after the lint report
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs reference counts and palette coverage
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Color Utility Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Generated Utilities:  %d\n", result.KnownUtilities)
	fmt.Fprintf(r.w, "Distinct Referenced:  %d\n", result.DistinctUtilities)
	fmt.Fprintf(r.w, "Total References:     %d\n", result.UtilityRefs)
	fmt.Fprintf(r.w, "Files Scanned:        %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:        %d\n", result.FilesSkipped)

	r.printCounts("By Color", result.RefsByColor)
	r.printCounts("By Kind", result.RefsByKind)

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Palette Coverage", r.useColors))
	fmt.Fprintln(r.w, "----------------")
	printProgressBar(r.w, result.Coverage())
}

// printCounts lists counts in descending order, ties by name
func (r *VerboseReporter) printCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Fprintf(r.w, "\n%s:\n", title)
	for _, name := range names {
		fmt.Fprintf(r.w, "  %-12s %d\n", name, counts[name])
	}
}

// PrintWarnings shows generation warnings raised while linting
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
