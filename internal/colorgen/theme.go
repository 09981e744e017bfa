package colorgen

import "fmt"

// Validate reports ErrConfiguration when the theme has no color table.
func (t Theme) Validate() error {
	if len(t.Colors) == 0 {
		return ErrConfiguration
	}
	return nil
}

// ResolveColor returns the raw theme expression for name.
// A name missing from the table resolves to "" rather than an error.
func ResolveColor(theme Theme, name string) (string, error) {
	if err := theme.Validate(); err != nil {
		return "", fmt.Errorf("resolve %q: %w", name, err)
	}
	return theme.Colors[name], nil
}

// resolveSpecs resolves every requested name up front so configuration
// problems surface before any file is touched.
func resolveSpecs(theme Theme, names []string) ([]ColorSpec, []string, error) {
	if err := theme.Validate(); err != nil {
		return nil, nil, err
	}

	specs := make([]ColorSpec, 0, len(names))
	var missing []string
	for _, name := range names {
		raw, err := ResolveColor(theme, name)
		if err != nil {
			return nil, nil, err
		}
		if _, ok := theme.Colors[name]; !ok {
			missing = append(missing, name)
		}
		specs = append(specs, ColorSpec{Name: name, Raw: raw})
	}
	return specs, missing, nil
}
