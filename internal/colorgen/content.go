package colorgen

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassToken is a candidate class name found in a content file
type ClassToken struct {
	Name     string // "bg-primary-500/50" (variant prefixes stripped)
	File     string
	Line     int
	Column   int    // 1-based column of Name within the line
	LineText string // Full line for source display
}

// ScanStats tracks content scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped by .gitignore
	FilesFailed     int // Files that could not be read
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a relative path is gitignored.
// Absolute paths (like /tmp/...) are never affected by the project gitignore.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// expandContentGlobs expands glob patterns to files, tracking statistics
func expandContentGlobs(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}

	return files, stats, nil
}

// ScanContent collects candidate class tokens from every file matching
// patterns. Unreadable files are counted and skipped.
func ScanContent(patterns []string) ([]ClassToken, ScanStats, error) {
	files, stats, err := expandContentGlobs(patterns)
	if err != nil {
		return nil, stats, err
	}

	var tokens []ClassToken
	for _, file := range files {
		fileTokens, err := scanFile(file)
		if err != nil {
			stats.FilesFailed++
			continue
		}
		stats.FilesScanned++
		tokens = append(tokens, fileTokens...)
	}

	return tokens, stats, nil
}

// scanFile tokenizes a single file line by line
func scanFile(filePath string) ([]ClassToken, error) {
	// #nosec G304 - path comes from configured content globs
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var tokens []ClassToken
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		for _, tok := range extractTokens(line) {
			tok.File = filePath
			tok.Line = lineNum
			tok.LineText = line
			tokens = append(tokens, tok)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// isTokenBreak reports characters that can never be part of a class name in
// markup, templates or JS string literals.
func isTokenBreak(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '"', '\'', '`', '<', '>', '=', '{', '}', '(', ')', ';', ',':
		return true
	}
	return false
}

// extractTokens splits a line into candidate class names. Variant prefixes
// ("hover:", "md:dark:") and the "!" important marker are stripped.
func extractTokens(line string) []ClassToken {
	var tokens []ClassToken

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		raw := line[start:end]
		offset := 0
		if i := strings.LastIndex(raw, ":"); i >= 0 {
			offset = i + 1
		}
		if offset < len(raw) && raw[offset] == '!' {
			offset++
		}
		if name := raw[offset:]; name != "" {
			tokens = append(tokens, ClassToken{Name: name, Column: start + offset + 1})
		}
		start = -1
	}

	for i, r := range line {
		if isTokenBreak(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(line))

	return tokens
}

// UsedClasses returns the set of token names.
func UsedClasses(tokens []ClassToken) map[string]bool {
	used := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		used[t.Name] = true
	}
	return used
}
