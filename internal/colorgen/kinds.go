package colorgen

import (
	"fmt"
	"strconv"
)

// Kind enumerates the utility class families generated for every shade.
type Kind int

// Utility kinds, in generation order.
const (
	KindText Kind = iota
	KindBackground
	KindBorder
	KindRing
	KindDivide
	KindPlaceholder
	KindGradientFrom
	KindGradientVia
	KindGradientTo
)

// Kinds lists every kind in generation order.
var Kinds = []Kind{
	KindText,
	KindBackground,
	KindBorder,
	KindRing,
	KindDivide,
	KindPlaceholder,
	KindGradientFrom,
	KindGradientVia,
	KindGradientTo,
}

// kindSpec carries the selector and declaration builders for one kind.
type kindSpec struct {
	prefix      string
	selector    func(class string) string
	declaration func(channels, alpha string) Declaration
}

var kindSpecs = [...]kindSpec{
	KindText: {
		prefix:   "text",
		selector: classSelector,
		declaration: func(ch, a string) Declaration {
			return Declaration{{"color", rgb(ch, a)}}
		},
	},
	KindBackground: {
		prefix:   "bg",
		selector: classSelector,
		declaration: func(ch, a string) Declaration {
			return Declaration{{"background-color", rgb(ch, a)}}
		},
	},
	KindBorder: {
		prefix:   "border",
		selector: classSelector,
		declaration: func(ch, a string) Declaration {
			return Declaration{{"border-color", rgb(ch, a)}}
		},
	},
	KindRing: {
		prefix:   "ring",
		selector: classSelector,
		// Ring opacity is owned by the ring utilities themselves.
		declaration: func(ch, _ string) Declaration {
			return Declaration{{"--tw-ring-color", rgb(ch, "var(--tw-ring-opacity)")}}
		},
	},
	KindDivide: {
		prefix: "divide",
		selector: func(class string) string {
			return classSelector(class) + " > :not([hidden]) ~ :not([hidden])"
		},
		declaration: func(ch, a string) Declaration {
			return Declaration{{"border-color", rgb(ch, a)}}
		},
	},
	KindPlaceholder: {
		prefix: "placeholder",
		selector: func(class string) string {
			return classSelector(class) + "::placeholder"
		},
		declaration: func(ch, a string) Declaration {
			return Declaration{{"color", rgb(ch, a)}}
		},
	},
	KindGradientFrom: {
		prefix:   "from",
		selector: classSelector,
		declaration: func(ch, a string) Declaration {
			return Declaration{
				{"--tw-gradient-from", rgb(ch, a) + " var(--tw-gradient-from-position)"},
				{"--tw-gradient-to", rgb(ch, "0") + " var(--tw-gradient-to-position)"},
				{"--tw-gradient-stops", "var(--tw-gradient-from), var(--tw-gradient-to)"},
			}
		},
	},
	KindGradientVia: {
		prefix:   "via",
		selector: classSelector,
		declaration: func(ch, a string) Declaration {
			return Declaration{
				{"--tw-gradient-to", rgb(ch, "0") + " var(--tw-gradient-to-position)"},
				{"--tw-gradient-stops", "var(--tw-gradient-from), " + rgb(ch, a) +
					" var(--tw-gradient-via-position), var(--tw-gradient-to) !important"},
			}
		},
	},
	KindGradientTo: {
		prefix:   "to",
		selector: classSelector,
		declaration: func(ch, a string) Declaration {
			return Declaration{
				{"--tw-gradient-to", rgb(ch, a) + " var(--tw-gradient-to-position) !important"},
			}
		},
	},
}

// Prefix returns the class name prefix, e.g. "bg".
func (k Kind) Prefix() string {
	return kindSpecs[k].prefix
}

func (k Kind) String() string {
	return k.Prefix()
}

// ClassName builds the markup class name, e.g. "bg-primary-500/50".
// A zero opacity is the full-opacity variant and has no modifier.
func (k Kind) ClassName(color, shade string, opacity int) string {
	name := fmt.Sprintf("%s-%s-%s", k.Prefix(), color, shade)
	if opacity > 0 {
		name += "/" + strconv.Itoa(opacity)
	}
	return name
}

// Selector builds the CSS selector for a class, escaping the opacity slash.
func (k Kind) Selector(color, shade string, opacity int) string {
	class := fmt.Sprintf("%s-%s-%s", k.Prefix(), color, shade)
	if opacity > 0 {
		class += `\/` + strconv.Itoa(opacity)
	}
	return kindSpecs[k].selector(class)
}

// Declaration builds the declaration block for one shade at one opacity.
func (k Kind) Declaration(s Shade, opacity int) Declaration {
	return kindSpecs[k].declaration(s.Channels(), alpha(opacity))
}

func classSelector(class string) string {
	return "." + class
}

func rgb(channels, alpha string) string {
	return fmt.Sprintf("rgb(%s / %s)", channels, alpha)
}

// alpha renders an opacity step as a 0..1 fraction. 0 is full opacity.
func alpha(opacity int) string {
	if opacity == 0 {
		opacity = 100
	}
	return strconv.FormatFloat(float64(opacity)/100, 'f', -1, 64)
}
