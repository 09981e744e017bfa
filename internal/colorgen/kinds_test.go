package colorgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindClassNameAndSelector(t *testing.T) {
	tests := []struct {
		name         string
		kind         Kind
		opacity      int
		wantClass    string
		wantSelector string
	}{
		{"text full opacity", KindText, 0, "text-primary-500", ".text-primary-500"},
		{"bg with opacity", KindBackground, 50, "bg-primary-500/50", `.bg-primary-500\/50`},
		{"bg opacity 100 keeps modifier", KindBackground, 100, "bg-primary-500/100", `.bg-primary-500\/100`},
		{"divide targets siblings", KindDivide, 0, "divide-primary-500",
			".divide-primary-500 > :not([hidden]) ~ :not([hidden])"},
		{"divide with opacity", KindDivide, 25, "divide-primary-500/25",
			`.divide-primary-500\/25 > :not([hidden]) ~ :not([hidden])`},
		{"placeholder pseudo element", KindPlaceholder, 5, "placeholder-primary-500/5",
			`.placeholder-primary-500\/5::placeholder`},
		{"gradient via", KindGradientVia, 0, "via-primary-500", ".via-primary-500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantClass, tt.kind.ClassName("primary", "500", tt.opacity))
			assert.Equal(t, tt.wantSelector, tt.kind.Selector("primary", "500", tt.opacity))
		})
	}
}

func TestKindDeclaration(t *testing.T) {
	shade := Shade{Label: "500", Color: RGB{134, 25, 143}, Valid: true}

	tests := []struct {
		name    string
		kind    Kind
		opacity int
		want    Declaration
	}{
		{
			name: "text full opacity",
			kind: KindText,
			want: Declaration{{"color", "rgb(134 25 143 / 1)"}},
		},
		{
			name:    "background half opacity",
			kind:    KindBackground,
			opacity: 50,
			want:    Declaration{{"background-color", "rgb(134 25 143 / 0.5)"}},
		},
		{
			name:    "border smallest step",
			kind:    KindBorder,
			opacity: 5,
			want:    Declaration{{"border-color", "rgb(134 25 143 / 0.05)"}},
		},
		{
			name:    "ring ignores opacity step",
			kind:    KindRing,
			opacity: 50,
			want:    Declaration{{"--tw-ring-color", "rgb(134 25 143 / var(--tw-ring-opacity))"}},
		},
		{
			name:    "divide",
			kind:    KindDivide,
			opacity: 100,
			want:    Declaration{{"border-color", "rgb(134 25 143 / 1)"}},
		},
		{
			name:    "placeholder",
			kind:    KindPlaceholder,
			opacity: 75,
			want:    Declaration{{"color", "rgb(134 25 143 / 0.75)"}},
		},
		{
			name:    "gradient from",
			kind:    KindGradientFrom,
			opacity: 10,
			want: Declaration{
				{"--tw-gradient-from", "rgb(134 25 143 / 0.1) var(--tw-gradient-from-position)"},
				{"--tw-gradient-to", "rgb(134 25 143 / 0) var(--tw-gradient-to-position)"},
				{"--tw-gradient-stops", "var(--tw-gradient-from), var(--tw-gradient-to)"},
			},
		},
		{
			name: "gradient via",
			kind: KindGradientVia,
			want: Declaration{
				{"--tw-gradient-to", "rgb(134 25 143 / 0) var(--tw-gradient-to-position)"},
				{"--tw-gradient-stops", "var(--tw-gradient-from), rgb(134 25 143 / 1) var(--tw-gradient-via-position), var(--tw-gradient-to) !important"},
			},
		},
		{
			name:    "gradient to",
			kind:    KindGradientTo,
			opacity: 20,
			want: Declaration{
				{"--tw-gradient-to", "rgb(134 25 143 / 0.2) var(--tw-gradient-to-position) !important"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Declaration(shade, tt.opacity))
		})
	}
}

func TestKindDeclaration_Degenerate(t *testing.T) {
	shade := Shade{Label: "500", Raw: "not-a-color"}
	assert.Equal(t,
		Declaration{{"color", "rgb(not-a-color / 1)"}},
		KindText.Declaration(shade, 0))
}

func TestKindPrefixes(t *testing.T) {
	var prefixes []string
	for _, k := range Kinds {
		prefixes = append(prefixes, k.String())
	}
	assert.Equal(t, []string{
		"text", "bg", "border", "ring", "divide", "placeholder", "from", "via", "to",
	}, prefixes)
}
