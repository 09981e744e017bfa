package colorgen

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUtilities() *Utilities {
	u := NewUtilities()
	u.Set(Rule{
		Selector:    ".text-primary-500",
		ClassName:   "text-primary-500",
		Declaration: Declaration{{"color", "rgb(134 25 143 / 1)"}},
	})
	u.Set(Rule{
		Selector:    ".divide-primary-500 > :not([hidden]) ~ :not([hidden])",
		ClassName:   "divide-primary-500",
		Declaration: Declaration{{"border-color", "rgb(134 25 143 / 1)"}},
	})
	return u
}

func TestStylesheetWriter(t *testing.T) {
	tests := []struct {
		name  string
		layer string
		want  string
	}{
		{
			name:  "with layer",
			layer: "utilities",
			want: "@layer utilities {\n" +
				"  .text-primary-500 {\n" +
				"    color: rgb(134 25 143 / 1);\n" +
				"  }\n" +
				"\n" +
				"  .divide-primary-500 > :not([hidden]) ~ :not([hidden]) {\n" +
				"    border-color: rgb(134 25 143 / 1);\n" +
				"  }\n" +
				"}\n",
		},
		{
			name:  "without layer",
			layer: "",
			want: ".text-primary-500 {\n" +
				"  color: rgb(134 25 143 / 1);\n" +
				"}\n" +
				"\n" +
				".divide-primary-500 > :not([hidden]) ~ :not([hidden]) {\n" +
				"  border-color: rgb(134 25 143 / 1);\n" +
				"}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewStylesheetWriter(&buf, tt.layer).AddUtilities(sampleUtilities()))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter(&buf).AddUtilities(sampleUtilities()))

	assert.Contains(t, buf.String(), `> :not([hidden])`)

	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleUtilities().Map(), got)
}

func TestNewSink(t *testing.T) {
	for _, format := range []string{"", "css"} {
		sink, err := NewSink(format, &bytes.Buffer{}, "utilities")
		require.NoError(t, err)
		assert.IsType(t, &StylesheetWriter{}, sink)
	}

	sink, err := NewSink("json", &bytes.Buffer{}, "")
	require.NoError(t, err)
	assert.IsType(t, &JSONWriter{}, sink)

	_, err = NewSink("scss", &bytes.Buffer{}, "")
	require.Error(t, err)
}
