package colorgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpacitySteps(t *testing.T) {
	steps := OpacitySteps()
	require.Len(t, steps, 20)
	assert.Equal(t, 5, steps[0])
	assert.Equal(t, 100, steps[len(steps)-1])
	for i := 1; i < len(steps); i++ {
		assert.Equal(t, 5, steps[i]-steps[i-1])
	}
}

func TestBuildUtilities(t *testing.T) {
	palette := LinearDeriver{}.DeriveShades(RGB{134, 25, 143})
	u := BuildUtilities("primary", palette)

	// 11 shades x 9 kinds x (full opacity + 20 steps)
	assert.Equal(t, 2079, u.Len())

	tests := []struct {
		selector string
		property string
		want     string
	}{
		{`.bg-primary-500\/50`, "background-color", "rgb(134 25 143 / 0.5)"},
		{".bg-primary-500", "background-color", "rgb(134 25 143 / 1)"},
		{`.bg-primary-500\/100`, "background-color", "rgb(134 25 143 / 1)"},
		{".text-primary-950", "color", "rgb(39 7 41 / 1)"},
		{`.ring-primary-500\/50`, "--tw-ring-color", "rgb(134 25 143 / var(--tw-ring-opacity))"},
		{".divide-primary-500 > :not([hidden]) ~ :not([hidden])", "border-color", "rgb(134 25 143 / 1)"},
		{`.placeholder-primary-500\/5::placeholder`, "color", "rgb(134 25 143 / 0.05)"},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			rule, ok := u.Get(tt.selector)
			require.True(t, ok, "missing rule %s", tt.selector)
			got, ok := rule.Declaration.Get(tt.property)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildUtilities_Order(t *testing.T) {
	palette := LinearDeriver{}.DeriveShades(RGB{134, 25, 143})
	rules := BuildUtilities("primary", palette).Rules()

	assert.Equal(t, ".text-primary-50", rules[0].Selector)
	assert.Equal(t, "text-primary-50", rules[0].ClassName)
	assert.Equal(t, `.text-primary-50\/5`, rules[1].Selector)
	assert.Equal(t, ".bg-primary-50", rules[21].Selector)
}

func TestUtilities_SetOverwritesInPlace(t *testing.T) {
	u := NewUtilities()
	u.Set(Rule{Selector: ".a", Declaration: Declaration{{"color", "red"}}})
	u.Set(Rule{Selector: ".b", Declaration: Declaration{{"color", "green"}}})
	u.Set(Rule{Selector: ".a", Declaration: Declaration{{"color", "blue"}}})

	require.Equal(t, 2, u.Len())
	rules := u.Rules()
	assert.Equal(t, ".a", rules[0].Selector)
	assert.Equal(t, Declaration{{"color", "blue"}}, rules[0].Declaration)
	assert.Equal(t, ".b", rules[1].Selector)
}

func TestUtilities_MergeDuplicateColor(t *testing.T) {
	first := BuildUtilities("primary", LinearDeriver{}.DeriveShades(RGB{0, 0, 0}))
	second := BuildUtilities("primary", LinearDeriver{}.DeriveShades(RGB{255, 0, 0}))

	all := NewUtilities()
	all.Merge(first)
	all.Merge(second)

	assert.Equal(t, 2079, all.Len())
	rule, ok := all.Get(".text-primary-500")
	require.True(t, ok)
	assert.Equal(t, Declaration{{"color", "rgb(255 0 0 / 1)"}}, rule.Declaration)
}

func TestUtilities_FilterAndMap(t *testing.T) {
	u := NewUtilities()
	u.Set(Rule{Selector: ".a", ClassName: "a", Declaration: Declaration{{"color", "red"}}})
	u.Set(Rule{Selector: ".b", ClassName: "b", Declaration: Declaration{{"color", "green"}}})

	kept := u.Filter(func(r Rule) bool { return r.ClassName == "b" })
	assert.Equal(t, 1, kept.Len())
	assert.Equal(t, 2, u.Len())

	assert.Equal(t, map[string]map[string]string{
		".a": {"color": "red"},
		".b": {"color": "green"},
	}, u.Map())
}
