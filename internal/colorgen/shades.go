package colorgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// RGB is a canonical color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Channels renders the color the way rgb() expects it inside a declaration:
// "R G B".
func (c RGB) Channels() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// String renders the canonical comma-separated form "R, G, B".
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ParseChannels parses the canonical "R, G, B" form.
func ParseChannels(s string) (RGB, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, false
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// Shade is one labeled entry of a palette.
type Shade struct {
	Label string
	Color RGB
	// Valid is false when the base color could not be interpreted. Raw then
	// holds the unparsed text, which is rendered verbatim.
	Valid bool
	Raw   string
}

// Channels returns the text substituted into rgb(... / alpha).
func (s Shade) Channels() string {
	if !s.Valid {
		return s.Raw
	}
	return s.Color.Channels()
}

// Palette is an ordered set of shades, lightest first.
type Palette []Shade

// Labels returns the shade labels in palette order.
func (p Palette) Labels() []string {
	labels := make([]string, len(p))
	for i, s := range p {
		labels[i] = s.Label
	}
	return labels
}

// Degenerate reports whether any shade could not be derived.
func (p Palette) Degenerate() bool {
	for _, s := range p {
		if !s.Valid {
			return true
		}
	}
	return false
}

// ShadeDeriver turns a base color into a labeled palette.
type ShadeDeriver interface {
	DeriveShades(base RGB) Palette
}

// shadeStep describes how one label is derived from the base color.
type shadeStep struct {
	label     string
	lighten   bool
	intensity float64
}

// shadeScale is the fixed 50..950 scale. 500 is the base color.
var shadeScale = []shadeStep{
	{"50", true, 0.95},
	{"100", true, 0.9},
	{"200", true, 0.75},
	{"300", true, 0.6},
	{"400", true, 0.3},
	{"500", false, 1},
	{"600", false, 0.9},
	{"700", false, 0.75},
	{"800", false, 0.6},
	{"900", false, 0.49},
	{"950", false, 0.29},
}

// ShadeLabels returns the fixed label set every palette carries.
func ShadeLabels() []string {
	labels := make([]string, len(shadeScale))
	for i, s := range shadeScale {
		labels[i] = s.label
	}
	return labels
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
)

// LinearDeriver tints toward white and shades toward black in RGB space.
type LinearDeriver struct{}

// DeriveShades implements ShadeDeriver.
func (LinearDeriver) DeriveShades(base RGB) Palette {
	c := base.colorful()

	palette := make(Palette, 0, len(shadeScale))
	for _, step := range shadeScale {
		var derived colorful.Color
		if step.lighten {
			// c + (1-c)*i
			derived = c.BlendRgb(white, step.intensity)
		} else {
			// c*i
			derived = c.BlendRgb(black, 1-step.intensity)
		}

		color := fromColorful(derived)
		if step.label == "500" {
			color = base
		}
		palette = append(palette, Shade{Label: step.label, Color: color, Valid: true})
	}
	return palette
}

// ExpandShades derives the palette for a canonical color string. Input that
// is not "R, G, B" is tried as any CSS color (named colors, hsl(), short hex).
// When nothing parses the palette is degenerate: every label is present and
// carries the raw text.
func ExpandShades(canonical string, d ShadeDeriver) Palette {
	if rgb, ok := ParseChannels(canonical); ok {
		return d.DeriveShades(rgb)
	}

	if parsed, err := csscolorparser.Parse(canonical); err == nil && canonical != "" {
		return d.DeriveShades(fromColorful(colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B}))
	}

	return degeneratePalette(canonical)
}

func degeneratePalette(raw string) Palette {
	palette := make(Palette, 0, len(shadeScale))
	for _, step := range shadeScale {
		palette = append(palette, Shade{Label: step.label, Raw: raw})
	}
	return palette
}
