package colorgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	varPattern   = regexp.MustCompile(`var\(([^)]+)\)`)
	digitPattern = regexp.MustCompile(`\d+`)
)

// NormalizeColor converts a raw theme expression into the "R, G, B" channel
// form. var(--name) references are resolved against the stylesheet at
// cssPath. Expressions that are neither var(), hex nor rgb() are returned
// unchanged.
func NormalizeColor(expr, cssPath string) (string, error) {
	if strings.Contains(expr, "var") {
		name := customPropertyName(expr)
		if name == "" {
			return "", fmt.Errorf("%q: %w", expr, ErrInvalidColor)
		}

		value, err := ReadCustomProperty(cssPath, name)
		if err != nil {
			return "", err
		}
		return strings.Join(strings.Fields(value), ", "), nil
	}

	if strings.HasPrefix(expr, "#") {
		return hexChannels(expr), nil
	}

	if strings.HasPrefix(expr, "rgb") {
		return strings.Join(digitPattern.FindAllString(expr, -1), ", "), nil
	}

	return expr, nil
}

// customPropertyName extracts "--name" from "... var(--name) ...".
func customPropertyName(expr string) string {
	m := varPattern.FindStringSubmatch(expr)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// hexChannels parses the first six hex digits as three bytes. Pairs that are
// missing or not hex render as NaN; the value is not validated further.
func hexChannels(hex string) string {
	digits := strings.TrimPrefix(hex, "#")

	channels := make([]string, 3)
	for i := range channels {
		start := i * 2
		pair := ""
		if start < len(digits) {
			pair = digits[start:min(start+2, len(digits))]
		}

		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			channels[i] = "NaN"
			continue
		}
		channels[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(channels, ", ")
}
