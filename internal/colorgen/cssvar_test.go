package colorgen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCustomProperty(t *testing.T) {
	tests := []struct {
		name      string
		css       string
		property  string
		wantValue string
		wantFound bool
	}{
		{
			name:      "root declaration",
			css:       ":root {\n  --color-primary: 134 25 143;\n}",
			property:  "--color-primary",
			wantValue: "134 25 143",
			wantFound: true,
		},
		{
			name:      "terminated by closing brace",
			css:       ":root{--color-primary:4 5 6}",
			property:  "--color-primary",
			wantValue: "4 5 6",
			wantFound: true,
		},
		{
			name:      "terminated by end of input",
			css:       "--color-primary: 7 8 9",
			property:  "--color-primary",
			wantValue: "7 8 9",
			wantFound: true,
		},
		{
			name:      "commented out declaration is ignored",
			css:       "/* --color-primary: 1 2 3; */ :root { --color-primary: 10 20 30; }",
			property:  "--color-primary",
			wantValue: "10 20 30",
			wantFound: true,
		},
		{
			name:      "var reference is not a declaration",
			css:       ".a { color: rgb(var(--color-primary)); }\n:root { --color-primary: 11 22 33; }",
			property:  "--color-primary",
			wantValue: "11 22 33",
			wantFound: true,
		},
		{
			name:      "longer name with same prefix",
			css:       ":root { --color-primary-dark: 1 1 1; --color-primary: 2 2 2; }",
			property:  "--color-primary",
			wantValue: "2 2 2",
			wantFound: true,
		},
		{
			name:      "function value",
			css:       ":root { --shadow: rgb(1 2 3 / 0.5); }",
			property:  "--shadow",
			wantValue: "rgb(1 2 3 / 0.5)",
			wantFound: true,
		},
		{
			name:      "first declaration wins",
			css:       ":root { --color-primary: 1 2 3; }\n.dark { --color-primary: 4 5 6; }",
			property:  "--color-primary",
			wantValue: "1 2 3",
			wantFound: true,
		},
		{
			name:      "not declared",
			css:       ":root { --color-accent: 1 2 3; }",
			property:  "--color-primary",
			wantValue: "",
			wantFound: false,
		},
		{
			name:      "empty stylesheet",
			css:       "",
			property:  "--color-primary",
			wantValue: "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindCustomProperty(tt.css, tt.property)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantValue, got)
		})
	}
}

func TestReadCustomProperty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.css")
	require.NoError(t, os.WriteFile(path, []byte(":root {\n  --color-primary: 134 25 143;\n}\n"), 0644))

	value, err := ReadCustomProperty(path, "--color-primary")
	require.NoError(t, err)
	assert.Equal(t, "134 25 143", value)

	value, err = ReadCustomProperty(path, "--color-missing")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestReadCustomProperty_MissingFile(t *testing.T) {
	_, err := ReadCustomProperty(filepath.Join(t.TempDir(), "nope.css"), "--color-primary")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileAccess))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
