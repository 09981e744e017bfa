package colorgen

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cg "github.com/caiquecamargo/colorgen/internal/colorgen"
)

// Generate builds the utilities for config and writes them to w in
// config.Format. Nothing is written when generation fails.
func Generate(config Config, w io.Writer) (*GenerateResult, error) {
	result, err := cg.Generate(config)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	sink, err := cg.NewSink(config.Format, w, config.Layer)
	if err != nil {
		return nil, err
	}
	if err := sink.AddUtilities(result.Utilities); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	return result, nil
}

// GenerateFile renders into memory first and only then replaces path, so a
// failed run leaves any previous output untouched.
func GenerateFile(config Config, path string) (*GenerateResult, error) {
	var buf bytes.Buffer
	result, err := Generate(config, &buf)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("write failed: %w", err)
	}

	return result, nil
}

// Lint reports class references that look like generated color utilities
// but do not exist.
func Lint(gen Config, config LintConfig) (*LintResult, error) {
	return cg.Lint(gen, config)
}
