package colorgen

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// UtilitySink receives the finished utility mapping, the way a host
// framework's addUtilities registers generated rules.
type UtilitySink interface {
	AddUtilities(u *Utilities) error
}

// StylesheetWriter renders utilities as CSS rules in insertion order.
type StylesheetWriter struct {
	w     io.Writer
	layer string
}

// NewStylesheetWriter writes to w, wrapping rules in @layer when layer is set.
func NewStylesheetWriter(w io.Writer, layer string) *StylesheetWriter {
	return &StylesheetWriter{w: w, layer: layer}
}

// AddUtilities implements UtilitySink.
func (s *StylesheetWriter) AddUtilities(u *Utilities) error {
	bw := bufio.NewWriter(s.w)

	indent := ""
	if s.layer != "" {
		fmt.Fprintf(bw, "@layer %s {\n", s.layer)
		indent = "  "
	}

	for i, r := range u.Rules() {
		if i > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "%s%s {\n", indent, r.Selector)
		for _, p := range r.Declaration {
			fmt.Fprintf(bw, "%s  %s: %s;\n", indent, p.Name, p.Value)
		}
		fmt.Fprintf(bw, "%s}\n", indent)
	}

	if s.layer != "" {
		bw.WriteString("}\n")
	}

	return bw.Flush()
}

// JSONWriter renders utilities as a selector -> declaration object.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter writes JSON to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// AddUtilities implements UtilitySink.
func (j *JSONWriter) AddUtilities(u *Utilities) error {
	encoder := json.NewEncoder(j.w)
	encoder.SetIndent("", "  ")
	// Selectors contain '>' which would otherwise be escaped
	encoder.SetEscapeHTML(false)
	return encoder.Encode(u.Map())
}

// NewSink returns the sink for a generation output format.
func NewSink(format string, w io.Writer, layer string) (UtilitySink, error) {
	switch format {
	case "", "css":
		return NewStylesheetWriter(w, layer), nil
	case "json":
		return NewJSONWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want css or json)", format)
	}
}
